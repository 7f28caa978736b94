// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/megabite-analytics-api/internal/config"
	"github.com/vfg2006/megabite-analytics-api/internal/domain"
	"github.com/vfg2006/megabite-analytics-api/internal/usecases/probing"
)

// DatabaseMonitorService verifica periodicamente a conexão com o banco e guarda o último resultado
type DatabaseMonitorService struct {
	scheduler *gocron.Scheduler
	prober    probing.Prober
	config    config.DatabaseMonitor

	mu              sync.Mutex
	checkRunning    bool
	lastCheckAt     time.Time
	reachable       bool
	databaseVersion string
	lastError       string
}

func NewDatabaseMonitorService(prober probing.Prober, cfg *config.Config) *DatabaseMonitorService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.DatabaseMonitor.CronSchedule,
		"enabled":       cfg.DatabaseMonitor.Enabled,
	}).Info("Configuração do monitor de banco de dados carregada")

	return &DatabaseMonitorService{
		scheduler: gocron.NewScheduler(time.Local),
		prober:    prober,
		config:    cfg.DatabaseMonitor,
	}
}

func (s *DatabaseMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de banco de dados desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando monitor de banco de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.CheckNow(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de banco de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de banco de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckNow executa uma verificação imediata; chamadas concorrentes são ignoradas
func (s *DatabaseMonitorService) CheckNow(ctx context.Context) {
	s.mu.Lock()
	if s.checkRunning {
		s.mu.Unlock()
		logrus.Warn("Verificação do banco de dados já está em execução")
		return
	}
	s.checkRunning = true
	s.mu.Unlock()

	result := s.prober.TestConnection(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkRunning = false
	s.lastCheckAt = time.Now()

	switch result.Status {
	case domain.ResultOK:
		s.reachable = true
		s.databaseVersion = result.Data.DatabaseVersion
		s.lastError = ""
		logrus.Debug("Banco de dados acessível")
	default:
		s.reachable = false
		s.lastError = result.Message()
		logrus.WithField("error", s.lastError).Error("Banco de dados inacessível")
	}
}

// GetStatus retorna o status atual do monitor
func (s *DatabaseMonitorService) GetStatus() domain.DatabaseMonitorStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := domain.DatabaseMonitorStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.checkRunning,
		Reachable:       s.reachable,
		DatabaseVersion: s.databaseVersion,
		LastError:       s.lastError,
	}

	if !s.lastCheckAt.IsZero() {
		lastCheckAt := s.lastCheckAt
		status.LastCheckAt = &lastCheckAt
	}

	return status
}
