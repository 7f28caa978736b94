package analytics

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/megabite-analytics-api/infrastructure/repository"
	"github.com/vfg2006/megabite-analytics-api/internal/domain"
	"github.com/vfg2006/megabite-analytics-api/pkg/log"
)

// AnalyticsService é o façade de leitura consumido pelos handlers de analytics
type AnalyticsService interface {
	// GetSalesSummary agrega as vendas concluídas (quantidade, receita e ticket médio)
	GetSalesSummary(ctx context.Context) domain.Result[*domain.SalesSummary]

	// GetDataOverview retorna contagens gerais, vendas por canal e o top de produtos por receita
	GetDataOverview(ctx context.Context) domain.Result[*domain.DataOverview]
}

type Service struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &Service{
		analyticsRepo: analyticsRepo,
	}
}

func (s *Service) GetSalesSummary(ctx context.Context) domain.Result[*domain.SalesSummary] {
	logger := log.ForContext(ctx)

	summary, err := s.analyticsRepo.GetSalesSummary(ctx)
	if err != nil {
		return failure[*domain.SalesSummary](logger, "sales summary", err)
	}

	if summary.TotalSales <= 0 {
		summary.TotalSales = 0
		summary.TotalRevenue = 0
		summary.AvgTicket = 0
	}
	summary.DataAvailable = summary.TotalSales > 0

	logger.WithFields(log.Fields{
		"total_sales":   summary.TotalSales,
		"total_revenue": summary.TotalRevenue,
	}).Debug("analytics: sales summary computed")

	return domain.Ok(summary)
}

func (s *Service) GetDataOverview(ctx context.Context) domain.Result[*domain.DataOverview] {
	logger := log.ForContext(ctx)

	overview, err := s.analyticsRepo.GetDataOverview(ctx)
	if err != nil {
		return failure[*domain.DataOverview](logger, "data overview", err)
	}

	if overview.SalesByChannel == nil {
		overview.SalesByChannel = make([]domain.ChannelSales, 0)
	}
	if overview.TopProducts == nil {
		overview.TopProducts = make([]domain.ProductRevenue, 0)
	}

	// Ordem decrescente de receita; empates mantêm a ordem vinda do banco
	sort.SliceStable(overview.SalesByChannel, func(i, j int) bool {
		return overview.SalesByChannel[i].TotalRevenue > overview.SalesByChannel[j].TotalRevenue
	})
	sort.SliceStable(overview.TopProducts, func(i, j int) bool {
		return overview.TopProducts[i].TotalRevenue > overview.TopProducts[j].TotalRevenue
	})

	if len(overview.TopProducts) > domain.TopProductsLimit {
		overview.TopProducts = overview.TopProducts[:domain.TopProductsLimit]
	}

	logger.WithFields(log.Fields{
		"channels": len(overview.SalesByChannel),
		"products": len(overview.TopProducts),
	}).Debug("analytics: data overview computed")

	return domain.Ok(overview)
}

func failure[T any](logger log.Logger, op string, err error) domain.Result[T] {
	if errors.Is(err, repository.ErrNotYetSeeded) {
		logger.WithError(err).Warnf("analytics: %s sem dados, aguardando geração", op)
		return domain.NotYetSeeded[T](err)
	}

	logger.WithError(err).Errorf("analytics: falha ao consultar %s", op)
	return domain.ConnectivityError[T](err)
}
