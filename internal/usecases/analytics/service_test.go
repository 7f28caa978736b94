package analytics

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/megabite-analytics-api/infrastructure/repository"
	"github.com/vfg2006/megabite-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/megabite-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var errUndefinedSales = &repository.SchemaError{
	Op:  "sales summary",
	Err: &pq.Error{Code: "42P01", Message: `relation "sales" does not exist`},
}

func TestService_GetSalesSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result domain.Result[*domain.SalesSummary])
	}{
		{
			name: "Três vendas concluídas de 10, 20 e 30",
			setup: func() {
				mockRepo.EXPECT().GetSalesSummary(gomock.Any()).Return(&domain.SalesSummary{
					TotalSales:   3,
					TotalRevenue: 60.0,
					AvgTicket:    20.0,
				}, nil)
			},
			validate: func(t *testing.T, result domain.Result[*domain.SalesSummary]) {
				require.Equal(t, domain.ResultOK, result.Status)
				assert.Equal(t, &domain.SalesSummary{
					TotalSales:    3,
					TotalRevenue:  60.0,
					AvgTicket:     20.0,
					DataAvailable: true,
				}, result.Data)
				assert.InDelta(t, result.Data.TotalRevenue/float64(result.Data.TotalSales), result.Data.AvgTicket, 1e-9)
			},
		},
		{
			name: "Nenhuma venda - tudo zerado e data_available falso",
			setup: func() {
				mockRepo.EXPECT().GetSalesSummary(gomock.Any()).Return(&domain.SalesSummary{
					DataAvailable: true,
				}, nil)
			},
			validate: func(t *testing.T, result domain.Result[*domain.SalesSummary]) {
				require.Equal(t, domain.ResultOK, result.Status)
				assert.Equal(t, &domain.SalesSummary{}, result.Data)
			},
		},
		{
			name: "Tabela inexistente - NotYetSeeded",
			setup: func() {
				mockRepo.EXPECT().GetSalesSummary(gomock.Any()).Return(nil, errUndefinedSales)
			},
			validate: func(t *testing.T, result domain.Result[*domain.SalesSummary]) {
				assert.Equal(t, domain.ResultNotYetSeeded, result.Status)
				assert.Nil(t, result.Data)
				assert.Contains(t, result.Message(), "does not exist")
			},
		},
		{
			name: "Conexão perdida - ConnectivityError",
			setup: func() {
				mockRepo.EXPECT().GetSalesSummary(gomock.Any()).Return(nil, errors.New("connection reset by peer"))
			},
			validate: func(t *testing.T, result domain.Result[*domain.SalesSummary]) {
				assert.Equal(t, domain.ResultConnectivityError, result.Status)
				assert.Equal(t, "connection reset by peer", result.Message())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			tt.validate(t, service.GetSalesSummary(context.Background()))
		})
	}
}

func TestService_GetDataOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Ordena por receita decrescente e limita o top de produtos", func(t *testing.T) {
		products := make([]domain.ProductRevenue, 0, 12)
		for i := 1; i <= 12; i++ {
			products = append(products, domain.ProductRevenue{
				Product:      fmt.Sprintf("Produto %02d", i),
				SalesCount:   int64(i),
				TotalRevenue: float64(i * 100),
			})
		}

		mockRepo.EXPECT().GetDataOverview(gomock.Any()).Return(&domain.DataOverview{
			Overview: domain.OverviewCounts{Stores: 50, Products: 500, Customers: 10000, Sales: 1000, Channels: 3},
			SalesByChannel: []domain.ChannelSales{
				{Channel: "Rappi", SalesCount: 10, TotalRevenue: 300},
				{Channel: "Presencial", SalesCount: 40, TotalRevenue: 1200},
				{Channel: "iFood", SalesCount: 20, TotalRevenue: 300},
			},
			TopProducts: products,
		}, nil)

		result := service.GetDataOverview(context.Background())
		require.Equal(t, domain.ResultOK, result.Status)

		assert.Equal(t, int64(50), result.Data.Overview.Stores)
		assert.Equal(t, []domain.ChannelSales{
			{Channel: "Presencial", SalesCount: 40, TotalRevenue: 1200},
			{Channel: "Rappi", SalesCount: 10, TotalRevenue: 300},
			{Channel: "iFood", SalesCount: 20, TotalRevenue: 300},
		}, result.Data.SalesByChannel)

		require.Len(t, result.Data.TopProducts, domain.TopProductsLimit)
		assert.Equal(t, "Produto 12", result.Data.TopProducts[0].Product)
		assert.Equal(t, "Produto 03", result.Data.TopProducts[9].Product)
		for i := 1; i < len(result.Data.TopProducts); i++ {
			assert.GreaterOrEqual(t, result.Data.TopProducts[i-1].TotalRevenue, result.Data.TopProducts[i].TotalRevenue)
		}
	})

	t.Run("Listas nulas viram listas vazias", func(t *testing.T) {
		mockRepo.EXPECT().GetDataOverview(gomock.Any()).Return(&domain.DataOverview{}, nil)

		result := service.GetDataOverview(context.Background())
		require.Equal(t, domain.ResultOK, result.Status)
		assert.NotNil(t, result.Data.SalesByChannel)
		assert.NotNil(t, result.Data.TopProducts)
	})

	t.Run("Tabela inexistente - NotYetSeeded", func(t *testing.T) {
		mockRepo.EXPECT().GetDataOverview(gomock.Any()).Return(nil, errUndefinedSales)

		result := service.GetDataOverview(context.Background())
		assert.Equal(t, domain.ResultNotYetSeeded, result.Status)
		assert.ErrorIs(t, result.Err, repository.ErrNotYetSeeded)
	})

	t.Run("Erro de sintaxe - ConnectivityError", func(t *testing.T) {
		mockRepo.EXPECT().GetDataOverview(gomock.Any()).Return(nil, &pq.Error{Code: "42601", Message: "syntax error at or near \")\""})

		result := service.GetDataOverview(context.Background())
		assert.Equal(t, domain.ResultConnectivityError, result.Status)
		assert.NotEmpty(t, result.Message())
	})
}
