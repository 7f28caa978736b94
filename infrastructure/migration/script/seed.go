package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/megabite-analytics-api/internal/domain"
	"github.com/vfg2006/megabite-analytics-api/pkg/utils"
)

type channelSeed struct {
	Name        string
	Type        string // P presencial, D delivery
	Weight      float64
	Description string
}

var channelSeeds = []channelSeed{
	{Name: "Presencial", Type: "P", Weight: 0.40, Description: "Vendas no balcão"},
	{Name: "iFood", Type: "D", Weight: 0.30, Description: "Marketplace iFood"},
	{Name: "Rappi", Type: "D", Weight: 0.15, Description: "Marketplace Rappi"},
	{Name: "Uber Eats", Type: "D", Weight: 0.08, Description: "Marketplace Uber Eats"},
	{Name: "WhatsApp", Type: "D", Weight: 0.05, Description: "Pedidos pelo WhatsApp"},
	{Name: "App Próprio", Type: "D", Weight: 0.02, Description: "Aplicativo da marca"},
}

const completedWeight = 0.95

var (
	productNames = []string{
		"X-Burger", "Cheeseburger", "Bacon Burger", "Double Burger", "Veggie Burger",
		"Pizza Margherita", "Pizza Calabresa", "Pizza 4 Queijos", "Pizza Portuguesa", "Pizza Frango",
		"Prato Executivo", "Filé", "Frango Grelhado", "Lasanha", "Risoto",
		"Combo Família", "Combo Individual", "Combo Duplo", "Combo Kids", "Combo Executivo",
		"Brownie", "Pudim", "Sorvete", "Petit Gateau", "Torta",
		"Refrigerante", "Suco", "Água", "Cerveja", "Vinho",
	}
	cities     = []string{"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Curitiba", "Porto Alegre", "Salvador", "Recife", "Fortaleza"}
	firstNames = []string{"Ana", "Bruno", "Carla", "Diego", "Eduarda", "Felipe", "Gabriela", "Henrique", "Isabela", "João"}
	lastNames  = []string{"Silva", "Souza", "Oliveira", "Santos", "Pereira", "Lima", "Costa", "Almeida"}
)

type seedConfig struct {
	Stores    int
	Products  int
	Customers int
	Sales     int
	Months    int
}

type seedStats struct {
	Channels     int
	Stores       int
	Products     int
	Customers    int
	Sales        int
	ProductSales int
	Completed    int
}

type queryExecer interface {
	execer
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type saleLine struct {
	ProductID  int64
	Quantity   int
	BasePrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

type generator struct {
	rnd     *rand.Rand
	now     time.Time
	newCode func(prefix string) (string, error)
}

func newGenerator(seed int64, now time.Time) *generator {
	return &generator{
		rnd:     rand.New(rand.NewSource(seed)),
		now:     now,
		newCode: utils.GenerateCode,
	}
}

func (g *generator) pickChannel() int {
	var total float64
	for _, c := range channelSeeds {
		total += c.Weight
	}

	target := g.rnd.Float64() * total
	for i, c := range channelSeeds {
		target -= c.Weight
		if target < 0 {
			return i
		}
	}

	return len(channelSeeds) - 1
}

func (g *generator) saleStatus() string {
	if g.rnd.Float64() < completedWeight {
		return domain.SaleStatusCompleted
	}
	return domain.SaleStatusCancelled
}

func (g *generator) saleTime(months int) time.Time {
	window := time.Duration(months) * 30 * 24 * time.Hour
	if window <= 0 {
		return g.now
	}
	return g.now.Add(-time.Duration(g.rnd.Int63n(int64(window)))).Truncate(time.Second)
}

// saleLines monta de 1 a 3 itens com quantidade de 1 a 3; o total da venda é a soma exata das linhas
func (g *generator) saleLines(productIDs []int64, basePrices map[int64]decimal.Decimal) ([]saleLine, decimal.Decimal) {
	count := 1 + g.rnd.Intn(3)
	lines := make([]saleLine, 0, count)
	total := decimal.Zero

	for i := 0; i < count; i++ {
		productID := productIDs[g.rnd.Intn(len(productIDs))]
		qty := 1 + g.rnd.Intn(3)
		base := basePrices[productID]
		lineTotal := base.Mul(decimal.NewFromInt(int64(qty)))

		lines = append(lines, saleLine{
			ProductID:  productID,
			Quantity:   qty,
			BasePrice:  base,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return lines, total
}

func insertReturningID(ctx context.Context, db queryExecer, builder squirrel.InsertBuilder) (int64, error) {
	query, args, err := builder.
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir insert")
	}

	var id int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func seed(ctx context.Context, db queryExecer, g *generator, cfg seedConfig) (*seedStats, error) {
	if cfg.Stores <= 0 || cfg.Products <= 0 {
		return nil, fmt.Errorf("é necessário ao menos uma loja e um produto (stores=%d, products=%d)", cfg.Stores, cfg.Products)
	}

	stats := &seedStats{}
	startTime := time.Now()

	channelIDs := make([]int64, 0, len(channelSeeds))
	for _, c := range channelSeeds {
		id, err := insertReturningID(ctx, db, squirrel.
			Insert("channels").
			Columns("name", "description", "type").
			Values(c.Name, c.Description, c.Type))
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao inserir canal %s", c.Name)
		}
		channelIDs = append(channelIDs, id)
	}
	stats.Channels = len(channelIDs)

	storeIDs := make([]int64, 0, cfg.Stores)
	for i := 0; i < cfg.Stores; i++ {
		city := cities[g.rnd.Intn(len(cities))]
		id, err := insertReturningID(ctx, db, squirrel.
			Insert("stores").
			Columns("name", "city", "is_active").
			Values(fmt.Sprintf("MegaBite %s %02d", city, i+1), city, g.rnd.Float64() > 0.1))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao inserir loja")
		}
		storeIDs = append(storeIDs, id)
	}
	stats.Stores = len(storeIDs)

	productIDs := make([]int64, 0, cfg.Products)
	basePrices := make(map[int64]decimal.Decimal, cfg.Products)
	for i := 0; i < cfg.Products; i++ {
		code, err := g.newCode("PRD")
		if err != nil {
			return nil, err
		}

		name := productNames[i%len(productNames)]
		if i >= len(productNames) {
			name = fmt.Sprintf("%s %d", name, i/len(productNames)+1)
		}

		id, err := insertReturningID(ctx, db, squirrel.
			Insert("products").
			Columns("name", "pos_uuid").
			Values(name, code))
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao inserir produto %s", name)
		}
		productIDs = append(productIDs, id)
		basePrices[id] = decimal.NewFromFloat(utils.PriceBetween(g.rnd.Float64, 15, 120))
	}
	stats.Products = len(productIDs)

	customerIDs := make([]int64, 0, cfg.Customers)
	for i := 0; i < cfg.Customers; i++ {
		first := firstNames[g.rnd.Intn(len(firstNames))]
		last := lastNames[g.rnd.Intn(len(lastNames))]
		id, err := insertReturningID(ctx, db, squirrel.
			Insert("customers").
			Columns("customer_name", "email").
			Values(first+" "+last, fmt.Sprintf("cliente%d@megabite.dev", i+1)))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao inserir cliente")
		}
		customerIDs = append(customerIDs, id)
	}
	stats.Customers = len(customerIDs)

	for i := 0; i < cfg.Sales; i++ {
		var customerID sql.NullInt64
		if len(customerIDs) > 0 && g.rnd.Float64() > 0.3 {
			customerID = sql.NullInt64{Int64: customerIDs[g.rnd.Intn(len(customerIDs))], Valid: true}
		}

		status := g.saleStatus()
		lines, total := g.saleLines(productIDs, basePrices)

		saleID, err := insertReturningID(ctx, db, squirrel.
			Insert("sales").
			Columns("store_id", "customer_id", "channel_id", "created_at", "sale_status_desc", "total_amount").
			Values(
				storeIDs[g.rnd.Intn(len(storeIDs))],
				customerID,
				channelIDs[g.pickChannel()],
				g.saleTime(cfg.Months),
				status,
				total,
			))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao inserir venda")
		}

		insert := squirrel.
			Insert("product_sales").
			Columns("sale_id", "product_id", "quantity", "base_price", "total_price")
		for _, line := range lines {
			insert = insert.Values(saleID, line.ProductID, line.Quantity, line.BasePrice, line.TotalPrice)
		}

		query, args, err := insert.PlaceholderFormat(squirrel.Dollar).ToSql()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao construir insert de itens")
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return nil, errors.Wrap(err, "erro ao inserir itens da venda")
		}

		stats.Sales++
		stats.ProductSales += len(lines)
		if status == domain.SaleStatusCompleted {
			stats.Completed++
		}

		if i > 0 && i%500 == 0 {
			logrus.Infof("Progresso: %d/%d vendas processadas", i, cfg.Sales)
		}
	}

	logrus.WithFields(logrus.Fields{
		"channels":      stats.Channels,
		"stores":        stats.Stores,
		"products":      stats.Products,
		"customers":     stats.Customers,
		"sales":         stats.Sales,
		"product_sales": stats.ProductSales,
		"completed":     stats.Completed,
		"elapsed":       time.Since(startTime).String(),
	}).Info("Carga de dados concluída")

	return stats, nil
}
