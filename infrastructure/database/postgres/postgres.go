package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/megabite-analytics-api/internal/config"
)

// Conn é o contrato consumido pelos repositórios
type Conn interface {
	Close() error
	Ping(context.Context) error
	WithConn(context.Context, func(Queryer) error) error
}

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool sem exigir que o banco esteja no ar; a
// disponibilidade é reportada pelos endpoints de probe.
func NewConnection(cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// WithConn reserva uma conexão do pool durante a execução de fn e a devolve
// em qualquer caminho de saída, inclusive em panic.
func (c *Connection) WithConn(ctx context.Context, fn func(Queryer) error) error {
	conn, err := c.DB.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(&scopedConn{conn: conn})
}
