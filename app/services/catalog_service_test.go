package services_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/app/services"
)

func newCatalog(t *testing.T) (*services.CatalogService, *repositories.ProductRepository) {
	t.Helper()
	db := newShopDB(t)
	repo := repositories.NewProductRepository(db)
	return services.NewCatalogService(repo), repo
}

func TestCatalogCreateAndList(t *testing.T) {
	svc, _ := newCatalog(t)

	created, err := svc.Create(services.ProductInput{Name: "Teh Botol", Price: 6000, Stock: 10}, nil)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Teh Botol", list[0].Name)
}

func TestCatalogCreateValidation(t *testing.T) {
	svc, _ := newCatalog(t)

	_, err := svc.Create(services.ProductInput{Name: "  ", Price: 100}, nil)
	assert.ErrorIs(t, err, services.ErrInvalidProduct)

	_, err = svc.Create(services.ProductInput{Name: "Teh", Price: -1}, nil)
	assert.ErrorIs(t, err, services.ErrInvalidProduct)
}

func TestCatalogUpdate(t *testing.T) {
	svc, _ := newCatalog(t)
	created, err := svc.Create(services.ProductInput{Name: "Teh Botol", Price: 6000, Stock: 10}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, services.ProductInput{Name: "Teh Botol 450ml", Price: 6500, Stock: 8}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Teh Botol 450ml", updated.Name)
	assert.Equal(t, int64(6500), updated.Price)

	_, err = svc.Update(999, services.ProductInput{Name: "X", Price: 1}, nil)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestCatalogDelete(t *testing.T) {
	svc, _ := newCatalog(t)
	created, err := svc.Create(services.ProductInput{Name: "Teh Botol", Price: 6000}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Find(created.ID)
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	assert.ErrorIs(t, svc.Delete(created.ID), services.ErrProductNotFound)
}

func TestCatalogXLSXExport(t *testing.T) {
	svc, _ := newCatalog(t)
	_, err := svc.Create(services.ProductInput{Name: "Kopi Susu", Price: 9000, Stock: 5}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteXLSX(&buf))

	wb, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)

	sheet := wb.Sheets[0]
	assert.Equal(t, "Products", sheet.Name)
	require.GreaterOrEqual(t, len(sheet.Rows), 2)
	assert.Equal(t, "Name", sheet.Rows[0].Cells[1].String())
	assert.Equal(t, "Kopi Susu", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "Rp 9.000", sheet.Rows[1].Cells[2].String())
}
