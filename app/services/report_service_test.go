package services_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/app/services"
)

func newReport(db *gorm.DB) *services.ReportService {
	return services.NewReportService(repositories.NewOrderRepository(db))
}

func seedOrder(t *testing.T, db *gorm.DB, name string, total int64) models.Order {
	t.Helper()
	o := models.Order{CustName: name, CustWA: "0812", Address: "Jl. X", Payment: "COD", Total: total}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := newShopDB(t)
	first := seedOrder(t, db, "Budi", 15000)
	second := seedOrder(t, db, "Siti", 7000)

	orders, err := newReport(db).ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderDetailNotFound(t *testing.T) {
	db := newShopDB(t)

	_, err := newReport(db).OrderDetail(42)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestOrderDetailIncludesItems(t *testing.T) {
	db := newShopDB(t)
	o := seedOrder(t, db, "Budi", 12000)
	item := models.OrderItem{OrderID: o.ID, ProductID: 1, Name: "Teh Botol", Price: 6000, Qty: 2, SubTotal: 12000}
	require.NoError(t, db.Create(&item).Error)

	detail, err := newReport(db).OrderDetail(o.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Teh Botol", detail.Items[0].Name)
}

func TestWriteCSVQuotesEmbeddedCommas(t *testing.T) {
	db := newShopDB(t)
	seedOrder(t, db, "Budi", 15000)
	seedOrder(t, db, "Siti, CV", 7000)

	var buf bytes.Buffer
	require.NoError(t, newReport(db).WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Order ID", "Date", "Name", "Contact", "Address", "Payment", "Total"}, rows[0])
	// Newest first: "Siti, CV" round-trips as one field.
	assert.Equal(t, "Siti, CV", rows[1][2])
	assert.Equal(t, "7000", rows[1][6])
	assert.Equal(t, "Budi", rows[2][2])
	assert.Equal(t, "15000", rows[2][6])
}

func TestWriteCSVOneRowPerOrder(t *testing.T) {
	db := newShopDB(t)
	o := seedOrder(t, db, "Budi", 12000)
	for i := 0; i < 3; i++ {
		item := models.OrderItem{OrderID: o.ID, Name: "Teh", Price: 4000, Qty: 1, SubTotal: 4000}
		require.NoError(t, db.Create(&item).Error)
	}

	var buf bytes.Buffer
	require.NoError(t, newReport(db).WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2, "header plus one row regardless of item count")
}
