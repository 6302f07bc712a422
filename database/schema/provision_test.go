package schema_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/database/schema"
	"github.com/shashiranjanraj/tokoku/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	return db
}

func TestEnsureSchemaCreatesAllTables(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, schema.EnsureSchema(db))

	for _, table := range []string{"products", "orders", "order_items", "users"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestEnsureSchemaSeedsOnFirstCreation(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, schema.EnsureSchema(db))

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Equal(t, int64(12), products)

	var admins int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", "admin").Count(&admins).Error)
	assert.Equal(t, int64(1), admins)
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, schema.EnsureSchema(db))

	// Existing rows must survive a re-run untouched, and nothing may be
	// re-seeded.
	order := models.Order{CustName: "Budi", CustWA: "0812", Address: "Jl. A", Payment: "COD", Total: 5000}
	require.NoError(t, db.Create(&order).Error)

	require.NoError(t, schema.EnsureSchema(db))

	var orders, products, users int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)

	assert.Equal(t, int64(1), orders)
	assert.Equal(t, int64(12), products)
	assert.Equal(t, int64(1), users)
}

func TestSeededProductShape(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, schema.EnsureSchema(db))

	var p models.Product
	require.NoError(t, db.Order("id").First(&p).Error)

	assert.NotEmpty(t, p.Name)
	assert.Greater(t, p.Price, int64(0))
	assert.Equal(t, 99, p.Stock)
	assert.Contains(t, p.Image, "source.unsplash.com")
}

func TestDialectLookup(t *testing.T) {
	for _, name := range []string{"sqlite", "mysql", "postgres", "sqlserver"} {
		d, err := schema.For(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
	}

	_, err := schema.For("oracle")
	assert.Error(t, err)
}
