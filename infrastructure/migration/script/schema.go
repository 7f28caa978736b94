package main

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type schemaStatement struct {
	Name string
	SQL  string
}

// Tabelas consumidas pelos relatórios de analytics. Reexecutar é seguro.
var schemaStatements = []schemaStatement{
	{
		Name: "channels",
		SQL: `CREATE TABLE IF NOT EXISTS channels (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description VARCHAR(255),
			type CHAR(1) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "stores",
		SQL: `CREATE TABLE IF NOT EXISTS stores (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(100),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "products",
		SQL: `CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(500) NOT NULL,
			pos_uuid VARCHAR(100) UNIQUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "customers",
		SQL: `CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			customer_name VARCHAR(100),
			email VARCHAR(100),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "sales",
		SQL: `CREATE TABLE IF NOT EXISTS sales (
			id SERIAL PRIMARY KEY,
			store_id INTEGER NOT NULL REFERENCES stores(id),
			customer_id INTEGER REFERENCES customers(id),
			channel_id INTEGER NOT NULL REFERENCES channels(id),
			created_at TIMESTAMP NOT NULL,
			sale_status_desc VARCHAR(100) NOT NULL,
			total_amount DECIMAL(10,2) NOT NULL DEFAULT 0
		)`,
	},
	{
		Name: "product_sales",
		SQL: `CREATE TABLE IF NOT EXISTS product_sales (
			id SERIAL PRIMARY KEY,
			sale_id INTEGER NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
			product_id INTEGER NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL,
			base_price DECIMAL(10,2) NOT NULL,
			total_price DECIMAL(10,2) NOT NULL
		)`,
	},
	{
		Name: "idx_sales_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_sales_status ON sales(sale_status_desc)`,
	},
	{
		Name: "idx_product_sales_product",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_product_sales_product ON product_sales(product_id)`,
	},
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func createSchema(ctx context.Context, db execer) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt.SQL); err != nil {
			return errors.Wrapf(err, "erro ao criar %s", stmt.Name)
		}
		logrus.WithField("object", stmt.Name).Debug("Objeto do schema garantido")
	}

	logrus.WithField("total", len(schemaStatements)).Info("Schema de analytics provisionado")
	return nil
}
