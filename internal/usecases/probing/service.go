package probing

import (
	"context"

	"github.com/vfg2006/megabite-analytics-api/infrastructure/repository"
	"github.com/vfg2006/megabite-analytics-api/internal/domain"
	"github.com/vfg2006/megabite-analytics-api/pkg/log"
)

const (
	StatusHealthy   = "healthy"
	StatusSuccess   = "success"
	DatabaseOnline  = "connected"
	RedisNotEnabled = "pending"
)

// Prober verifica se o banco de dados está acessível
type Prober interface {
	// CheckHealth executa uma instrução trivial de liveness
	CheckHealth(ctx context.Context) domain.Result[*domain.HealthStatus]

	// TestConnection obtém versão e horário do servidor de banco de dados
	TestConnection(ctx context.Context) domain.Result[*domain.ConnectionTest]
}

type Service struct {
	probeRepo repository.DatabaseProbeRepository
}

func NewService(probeRepo repository.DatabaseProbeRepository) Prober {
	return &Service{
		probeRepo: probeRepo,
	}
}

func (s *Service) CheckHealth(ctx context.Context) domain.Result[*domain.HealthStatus] {
	if err := s.probeRepo.CheckLiveness(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Error("probe: banco de dados inacessível")
		return domain.ConnectivityError[*domain.HealthStatus](err)
	}

	return domain.Ok(&domain.HealthStatus{
		Status:   StatusHealthy,
		Database: DatabaseOnline,
		Redis:    RedisNotEnabled,
	})
}

func (s *Service) TestConnection(ctx context.Context) domain.Result[*domain.ConnectionTest] {
	info, err := s.probeRepo.GetDatabaseInfo(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("probe: falha ao obter metadados do banco")
		return domain.ConnectivityError[*domain.ConnectionTest](err)
	}

	return domain.Ok(&domain.ConnectionTest{
		DatabaseVersion: info.Version,
		ServerTime:      info.ServerTime,
		Status:          StatusSuccess,
	})
}
