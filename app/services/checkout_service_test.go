package services_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/cart"
	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/app/services"
	"github.com/shashiranjanraj/tokoku/config"
	"github.com/shashiranjanraj/tokoku/database/schema"
	"github.com/shashiranjanraj/tokoku/pkg/database"
)

const testShopPhone = "628199999"

// newShopDB provisions a throwaway sqlite shop without the sample catalog
// so each test starts from known products.
func newShopDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.Set("SEED_SAMPLE_PRODUCTS", "false")
	t.Cleanup(func() { config.Set("SEED_SAMPLE_PRODUCTS", "true") })

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	require.NoError(t, schema.EnsureSchema(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, Stock: 10}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func newCheckout(db *gorm.DB) (*services.CheckoutService, *repositories.OrderRepository) {
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)
	return services.NewCheckoutService(products, orders, nil, testShopPhone), orders
}

func TestCheckoutPersistsOrderAtomically(t *testing.T) {
	db := newShopDB(t)
	teh := seedProduct(t, db, "Teh Botol", 6000)
	kopi := seedProduct(t, db, "Kopi Susu", 9000)
	svc, orders := newCheckout(db)

	c := cart.New()
	c.Add(teh.ID, 2)
	c.Add(kopi.ID, 1)

	rec, err := svc.Checkout(c, services.CheckoutInput{
		Name: "Budi", WA: "0812", Address: "Jl. Melati 5", Payment: "COD",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(21000), rec.Order.Total)
	require.Len(t, rec.Order.Items, 2)

	stored, err := orders.FindWithItems(rec.Order.ID)
	require.NoError(t, err)

	var sum int64
	for _, it := range stored.Items {
		sum += it.SubTotal
	}
	assert.Equal(t, stored.Total, sum, "order total must equal the sum of its items")
	assert.True(t, c.Empty(), "cart must be cleared after checkout")
}

func TestCheckoutSnapshotsNameAndPrice(t *testing.T) {
	db := newShopDB(t)
	p := seedProduct(t, db, "Galon Isi Ulang", 20000)
	svc, orders := newCheckout(db)

	c := cart.New()
	c.Add(p.ID, 1)
	rec, err := svc.Checkout(c, services.CheckoutInput{Name: "Siti", WA: "0813", Address: "Jl. B"})
	require.NoError(t, err)

	// A later catalog edit must not rewrite history.
	p.Name = "Galon Promo"
	p.Price = 1
	require.NoError(t, db.Save(&p).Error)

	stored, err := orders.FindWithItems(rec.Order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Galon Isi Ulang", stored.Items[0].Name)
	assert.Equal(t, int64(20000), stored.Items[0].Price)
}

func TestCheckoutRollsBackOrderWhenItemsFail(t *testing.T) {
	db := newShopDB(t)
	p := seedProduct(t, db, "Gula Pasir", 14000)
	svc, orders := newCheckout(db)

	c := cart.New()
	c.Add(p.ID, 2)

	// Break the item insert mid-transaction; the order row written in
	// the same transaction must not survive the rollback.
	require.NoError(t, db.Exec("DROP TABLE order_items").Error)

	_, err := svc.Checkout(c, services.CheckoutInput{Name: "Budi", WA: "0812", Address: "Jl. D"})
	require.Error(t, err)
	assert.False(t, c.Empty(), "failed checkout must preserve the cart for retry")

	all, err := orders.AllNewestFirst()
	require.NoError(t, err)
	assert.Empty(t, all, "no partial order may remain after rollback")
}

func TestCheckoutDropsStaleCartEntries(t *testing.T) {
	db := newShopDB(t)
	p := seedProduct(t, db, "Air Mineral", 4000)
	svc, _ := newCheckout(db)

	c := cart.New()
	c.Add(p.ID, 1)
	c.Add(9999, 5) // deleted product

	rec, err := svc.Checkout(c, services.CheckoutInput{Name: "Budi", WA: "0812", Address: "Jl. C"})
	require.NoError(t, err)
	require.Len(t, rec.Order.Items, 1)
	assert.Equal(t, int64(4000), rec.Order.Total)
}

func TestCheckoutAllStaleMeansEmpty(t *testing.T) {
	db := newShopDB(t)
	svc, _ := newCheckout(db)

	c := cart.New()
	c.Add(9999, 1)

	_, err := svc.Checkout(c, services.CheckoutInput{Name: "Budi", WA: "0812", Address: "Jl. C"})
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newShopDB(t)
	svc, _ := newCheckout(db)

	_, err := svc.Checkout(cart.New(), services.CheckoutInput{Name: "Budi", WA: "0812", Address: "Jl. C"})
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestCheckoutRequiresCustomerFields(t *testing.T) {
	db := newShopDB(t)
	p := seedProduct(t, db, "Teh Pucuk", 5000)
	svc, orders := newCheckout(db)

	c := cart.New()
	c.Add(p.ID, 1)

	_, err := svc.Checkout(c, services.CheckoutInput{Name: "  ", WA: "0812", Address: "Jl. C"})
	assert.ErrorIs(t, err, services.ErrMissingField)
	assert.False(t, c.Empty(), "failed checkout must not clear the cart")

	all, err := orders.AllNewestFirst()
	require.NoError(t, err)
	assert.Empty(t, all, "no order row may exist after a rejected checkout")
}

func TestCheckoutDefaultsPaymentMethod(t *testing.T) {
	db := newShopDB(t)
	p := seedProduct(t, db, "Isotonik", 8500)
	svc, _ := newCheckout(db)

	c := cart.New()
	c.Add(p.ID, 1)
	rec, err := svc.Checkout(c, services.CheckoutInput{Name: "Budi", WA: "0812", Address: "Jl. C"})
	require.NoError(t, err)
	assert.Equal(t, "Transfer", rec.Order.Payment)
}

func TestCheckoutReceiptLinksToWhatsApp(t *testing.T) {
	db := newShopDB(t)
	p := seedProduct(t, db, "Susu UHT", 7500)
	svc, _ := newCheckout(db)

	c := cart.New()
	c.Add(p.ID, 2)
	rec, err := svc.Checkout(c, services.CheckoutInput{Name: "Budi", WA: "0812", Address: "Jl. C"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rec.RedirectURL, "https://wa.me/"+testShopPhone+"?text="))
	assert.True(t, strings.HasPrefix(rec.Message, "Hubungi Kami\n"))
	assert.Contains(t, rec.Message, "Susu UHT x2 - Rp 15.000")
}

func TestCheckoutTwoSessionsStayIsolated(t *testing.T) {
	db := newShopDB(t)
	p := seedProduct(t, db, "Air Soda", 8000)
	svc, orders := newCheckout(db)

	a := cart.New()
	a.Add(p.ID, 1)
	b := cart.New()
	b.Add(p.ID, 3)

	recA, err := svc.Checkout(a, services.CheckoutInput{Name: "Budi", WA: "0812", Address: "Jl. A"})
	require.NoError(t, err)
	recB, err := svc.Checkout(b, services.CheckoutInput{Name: "Siti", WA: "0813", Address: "Jl. B"})
	require.NoError(t, err)

	assert.NotEqual(t, recA.Order.ID, recB.Order.ID)
	assert.Equal(t, int64(8000), recA.Order.Total)
	assert.Equal(t, int64(24000), recB.Order.Total)

	all, err := orders.AllNewestFirst()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, recB.Order.ID, all[0].ID, "listing is newest first")
}
