// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/megabite-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/megabite-analytics-api/internal/domain"
)

const (
	salesTable        = "sales s"
	channelsTable     = "channels c"
	productSalesTable = "product_sales ps"
)

type AnalyticsRepository interface {
	GetSalesSummary(ctx context.Context) (*domain.SalesSummary, error)
	GetDataOverview(ctx context.Context) (*domain.DataOverview, error)
}

type analyticsRepository struct {
	conn postgres.Conn
}

func NewAnalyticsRepository(conn postgres.Conn) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) GetSalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*) AS total_sales",
			"COALESCE(SUM(s.total_amount), 0) AS total_revenue",
			"COALESCE(AVG(s.total_amount), 0) AS avg_ticket",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.sale_status_desc": domain.SaleStatusCompleted}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.SalesSummary{}
	err = r.conn.WithConn(ctx, func(q postgres.Queryer) error {
		var totalSales sql.NullInt64
		var totalRevenue, avgTicket decimal.NullDecimal

		if err := q.QueryRow(ctx, query, args...).Scan(&totalSales, &totalRevenue, &avgTicket); err != nil {
			return err
		}

		summary.TotalSales = totalSales.Int64
		summary.TotalRevenue = coalesceMoney(totalRevenue)
		summary.AvgTicket = coalesceMoney(avgTicket)
		return nil
	})
	if err != nil {
		return nil, classifyError("sales summary", err)
	}

	summary.DataAvailable = summary.TotalSales > 0
	return summary, nil
}

func (r *analyticsRepository) GetDataOverview(ctx context.Context) (*domain.DataOverview, error) {
	countsQuery, _, err := squirrel.
		Select().
		Column(countOf("stores", "total_stores")).
		Column(countOf("products", "total_products")).
		Column(countOf("customers", "total_customers")).
		Column(countOf("sales", "total_sales")).
		Column(countOf("channels", "total_channels")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de contagens: %w", err)
	}

	channelQuery, channelArgs, err := squirrel.
		Select(
			"c.name",
			"COUNT(s.id) AS sales_count",
			"COALESCE(SUM(s.total_amount), 0) AS total_revenue",
		).
		From(salesTable).
		Join(channelsTable + " ON s.channel_id = c.id").
		Where(squirrel.Eq{"s.sale_status_desc": domain.SaleStatusCompleted}).
		GroupBy("c.name").
		OrderBy("total_revenue DESC", "c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de canais: %w", err)
	}

	productQuery, productArgs, err := squirrel.
		Select(
			"p.name",
			"COUNT(ps.id) AS sales_count",
			"COALESCE(SUM(ps.total_price), 0) AS total_revenue",
		).
		From(productSalesTable).
		Join("products p ON ps.product_id = p.id").
		GroupBy("p.name").
		OrderBy("total_revenue DESC", "p.name ASC").
		Limit(domain.TopProductsLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de produtos: %w", err)
	}

	overview := &domain.DataOverview{
		SalesByChannel: make([]domain.ChannelSales, 0),
		TopProducts:    make([]domain.ProductRevenue, 0),
	}

	err = r.conn.WithConn(ctx, func(q postgres.Queryer) error {
		counts := &overview.Overview
		err := q.QueryRow(ctx, countsQuery).Scan(
			&counts.Stores,
			&counts.Products,
			&counts.Customers,
			&counts.Sales,
			&counts.Channels,
		)
		if err != nil {
			return fmt.Errorf("erro ao buscar contagens: %w", err)
		}

		overview.SalesByChannel, err = r.queryChannelSales(ctx, q, channelQuery, channelArgs)
		if err != nil {
			return err
		}

		overview.TopProducts, err = r.queryTopProducts(ctx, q, productQuery, productArgs)
		return err
	})
	if err != nil {
		return nil, classifyError("data overview", err)
	}

	return overview, nil
}

func (r *analyticsRepository) queryChannelSales(ctx context.Context, q postgres.Queryer, query string, args []interface{}) ([]domain.ChannelSales, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por canal: %w", err)
	}
	defer rows.Close()

	channels := make([]domain.ChannelSales, 0)
	for rows.Next() {
		var item domain.ChannelSales
		var revenue decimal.NullDecimal

		if err := rows.Scan(&item.Channel, &item.SalesCount, &revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por canal: %w", err)
		}
		item.TotalRevenue = coalesceMoney(revenue)
		channels = append(channels, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *analyticsRepository) queryTopProducts(ctx context.Context, q postgres.Queryer, query string, args []interface{}) ([]domain.ProductRevenue, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar top produtos: %w", err)
	}
	defer rows.Close()

	products := make([]domain.ProductRevenue, 0, domain.TopProductsLimit)
	for rows.Next() {
		var item domain.ProductRevenue
		var revenue decimal.NullDecimal

		if err := rows.Scan(&item.Product, &item.SalesCount, &revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear top produtos: %w", err)
		}
		item.TotalRevenue = coalesceMoney(revenue)
		products = append(products, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func countOf(table, alias string) squirrel.Sqlizer {
	return squirrel.Alias(squirrel.Select("COUNT(*)").From(table), alias)
}

// coalesceMoney converte agregados monetários nulos em zero
func coalesceMoney(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}
