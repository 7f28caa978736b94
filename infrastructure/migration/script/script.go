// Ferramenta de provisionamento do schema de analytics e carga de dados de demonstração.
//
//	go run ./infrastructure/migration/script -seed -sales 5000
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/megabite-analytics-api/internal/config"
	"github.com/vfg2006/megabite-analytics-api/pkg/log"
)

type options struct {
	DBURL    string
	Seed     bool
	RandSeed int64
	Config   seedConfig
}

func parseFlags(args []string, defaultDSN string) (*options, error) {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)

	opts := &options{}
	fs.StringVar(&opts.DBURL, "db-url", defaultDSN, "string de conexão do PostgreSQL")
	fs.BoolVar(&opts.Seed, "seed", false, "insere dados de demonstração após criar o schema")
	fs.Int64Var(&opts.RandSeed, "rand-seed", time.Now().UnixNano(), "semente do gerador aleatório")
	fs.IntVar(&opts.Config.Stores, "stores", 10, "quantidade de lojas")
	fs.IntVar(&opts.Config.Products, "products", 40, "quantidade de produtos")
	fs.IntVar(&opts.Config.Customers, "customers", 200, "quantidade de clientes")
	fs.IntVar(&opts.Config.Sales, "sales", 2000, "quantidade de vendas")
	fs.IntVar(&opts.Config.Months, "months", 6, "janela de meses das vendas geradas")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return opts, nil
}

func main() {
	log.Configure(os.Getenv("LOG_LEVEL"))
	logrus.Info("Iniciando script de migração...")

	var defaultDSN string
	if cfg, err := config.NewConfig(); err == nil {
		defaultDSN = cfg.Database.DSN
	}

	opts, err := parseFlags(os.Args[1:], defaultDSN)
	if err != nil {
		logrus.WithError(err).Fatal("Parâmetros inválidos")
	}

	db, err := sql.Open("postgres", opts.DBURL)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar conexão com PostgreSQL")
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	if err := createSchema(ctx, db); err != nil {
		logrus.WithError(err).Fatal("Erro ao provisionar schema")
	}

	if !opts.Seed {
		logrus.Info("Carga de dados não solicitada, encerrando")
		return
	}

	logrus.WithFields(logrus.Fields{
		"stores":    opts.Config.Stores,
		"products":  opts.Config.Products,
		"customers": opts.Config.Customers,
		"sales":     opts.Config.Sales,
		"rand_seed": opts.RandSeed,
	}).Info("Iniciando carga de dados")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar transação")
	}

	if _, err := seed(ctx, tx, newGenerator(opts.RandSeed, time.Now()), opts.Config); err != nil {
		logrus.WithError(err).Error("Erro na carga de dados")
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Fatal("Erro ao reverter transação")
		}
		logrus.Info("Transação revertida")
		os.Exit(1)
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("Erro ao confirmar transação")
	}
}
