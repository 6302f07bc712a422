// Package schema provisions the storage backend: it checks each required
// table with a dialect-appropriate introspection query, creates the ones
// that are missing, and seeds reference data exactly once. Safe to call on
// every process start.
package schema

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/database/seeders"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
)

type table struct {
	name string
	ddl  func(d Dialect) string
	// seed runs once, after this process created the table. Seed failures
	// are logged and swallowed: a shop with an empty catalog still works.
	seed func(db *gorm.DB) error
}

var tables = []table{
	{
		name: "products",
		ddl: func(d Dialect) string {
			return fmt.Sprintf(`CREATE TABLE products (
	id %s,
	name VARCHAR(255) NOT NULL,
	price BIGINT NOT NULL DEFAULT 0,
	image VARCHAR(255),
	stock INT NOT NULL DEFAULT 0,
	created_at %s
)%s`, d.AutoIncrementPrimaryKey(), d.TimestampColumn(), d.CreateTableSuffix())
		},
		seed: seeders.SampleProducts,
	},
	{
		name: "orders",
		ddl: func(d Dialect) string {
			return fmt.Sprintf(`CREATE TABLE orders (
	id %s,
	cust_name VARCHAR(255),
	cust_wa VARCHAR(50),
	address TEXT,
	payment VARCHAR(50),
	total BIGINT NOT NULL DEFAULT 0,
	created_at %s
)%s`, d.AutoIncrementPrimaryKey(), d.TimestampColumn(), d.CreateTableSuffix())
		},
	},
	{
		name: "order_items",
		ddl: func(d Dialect) string {
			return fmt.Sprintf(`CREATE TABLE order_items (
	id %s,
	order_id BIGINT NOT NULL,
	product_id BIGINT,
	name VARCHAR(255),
	price BIGINT NOT NULL DEFAULT 0,
	qty INT NOT NULL DEFAULT 1,
	sub_total BIGINT NOT NULL DEFAULT 0,
	FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
)%s`, d.AutoIncrementPrimaryKey(), d.CreateTableSuffix())
		},
	},
	{
		name: "users",
		ddl: func(d Dialect) string {
			return fmt.Sprintf(`CREATE TABLE users (
	id %s,
	username VARCHAR(100) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'staff',
	created_at %s
)%s`, d.AutoIncrementPrimaryKey(), d.TimestampColumn(), d.CreateTableSuffix())
		},
		seed: seeders.DefaultAdmin,
	},
}

// EnsureSchema creates every missing required table and seeds it on first
// creation. Tables that already exist are left untouched — no column
// migration happens here. Returns an error only when a required table could
// not be created; nothing else in the system can run without the schema, so
// the caller should treat that as fatal.
func EnsureSchema(db *gorm.DB) error {
	d, err := For(db.Dialector.Name())
	if err != nil {
		return err
	}

	for _, t := range tables {
		exists, err := d.HasTable(db, t.name)
		if err != nil {
			return fmt.Errorf("schema: check %s: %w", t.name, err)
		}
		if exists {
			continue
		}

		if err := db.Exec(t.ddl(d)).Error; err != nil {
			// Two processes can race on an empty database. If the table is
			// there now, the other process won; that is a benign outcome
			// and the winner does the seeding.
			if again, e := d.HasTable(db, t.name); e == nil && again {
				logger.Warn("schema: table created concurrently", "table", t.name)
				continue
			}
			return fmt.Errorf("schema: create %s: %w", t.name, err)
		}

		logger.Info("schema: created table", "table", t.name, "dialect", d.Name())

		if t.seed == nil {
			continue
		}
		if err := t.seed(db); err != nil {
			logger.Error("schema: seed failed", "table", t.name, "error", err)
		}
	}

	return nil
}
