package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/megabite-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/megabite-analytics-api/internal/domain"
)

type DatabaseProbeRepository interface {
	CheckLiveness(ctx context.Context) error
	GetDatabaseInfo(ctx context.Context) (*domain.DatabaseInfo, error)
}

type databaseProbeRepository struct {
	conn postgres.Conn
}

func NewDatabaseProbeRepository(conn postgres.Conn) DatabaseProbeRepository {
	return &databaseProbeRepository{
		conn: conn,
	}
}

func (r *databaseProbeRepository) CheckLiveness(ctx context.Context) error {
	query, _, err := squirrel.Select("1").ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.WithConn(ctx, func(q postgres.Queryer) error {
		var one int
		return q.QueryRow(ctx, query).Scan(&one)
	})

	return classifyError("liveness", err)
}

func (r *databaseProbeRepository) GetDatabaseInfo(ctx context.Context) (*domain.DatabaseInfo, error) {
	query, _, err := squirrel.Select("version()", "current_timestamp").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	info := &domain.DatabaseInfo{}
	err = r.conn.WithConn(ctx, func(q postgres.Queryer) error {
		return q.QueryRow(ctx, query).Scan(&info.Version, &info.ServerTime)
	})
	if err != nil {
		return nil, classifyError("database info", err)
	}

	return info, nil
}
