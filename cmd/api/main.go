package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/megabite-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/megabite-analytics-api/infrastructure/repository"
	"github.com/vfg2006/megabite-analytics-api/internal/api"
	"github.com/vfg2006/megabite-analytics-api/internal/config"
	"github.com/vfg2006/megabite-analytics-api/internal/scheduler"
	"github.com/vfg2006/megabite-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/megabite-analytics-api/internal/usecases/probing"
	"github.com/vfg2006/megabite-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.WithFields(logrus.Fields{
		"app":       cfg.App.Name,
		"version":   cfg.App.Version,
		"log_level": logLevel.String(),
	}).Info("Configuração carregada")

	if cfg.Server.Reload {
		logrus.Info("API_RELOAD ativo: recarga automática deve ser feita por ferramenta externa (ex.: air)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	analyticsRepo := repository.NewAnalyticsRepository(pgConn)
	probeRepo := repository.NewDatabaseProbeRepository(pgConn)

	analyticsService := analytics.NewService(analyticsRepo)
	prober := probing.NewService(probeRepo)

	databaseMonitor := scheduler.NewDatabaseMonitorService(prober, cfg)
	if err := databaseMonitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de banco de dados")
	}

	server, err := api.New(cfg, analyticsService, prober, databaseMonitor)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn abre o pool do PostgreSQL; banco fora do ar não impede a subida da API
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar conexão com PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL ainda indisponível, /health reportará a falha")
		return conn
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
