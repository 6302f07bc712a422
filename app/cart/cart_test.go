package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/tokoku/app/cart"
)

func TestAddSumsRepeatedProducts(t *testing.T) {
	c := cart.New()
	c.Add(7, 2)
	c.Add(7, 3)

	assert.Equal(t, 5, c.Qty(7))
	assert.Equal(t, 5, c.Count())
	assert.Equal(t, 1, c.Len())
}

func TestAddClampsQuantity(t *testing.T) {
	c := cart.New()
	c.Add(1, 0)
	c.Add(2, -4)

	assert.Equal(t, 1, c.Qty(1))
	assert.Equal(t, 1, c.Qty(2))
}

func TestAddIgnoresZeroProductID(t *testing.T) {
	c := cart.New()
	c.Add(0, 3)

	assert.True(t, c.Empty())
}

func TestSetQuantitiesReplacesWholesale(t *testing.T) {
	c := cart.New()
	c.Add(5, 2)
	c.Add(6, 1)

	c.SetQuantities(map[uint]int{5: 0, 6: 3})

	assert.Equal(t, 0, c.Qty(5), "zero quantity removes the entry")
	assert.Equal(t, 3, c.Qty(6))
	assert.Equal(t, 1, c.Len())
}

func TestSetQuantitiesDropsInvalidEntries(t *testing.T) {
	c := cart.New()
	c.SetQuantities(map[uint]int{0: 2, 3: -1, 4: 2})

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Qty(4))
}

func TestProductIDsSorted(t *testing.T) {
	c := cart.New()
	c.Add(30, 1)
	c.Add(2, 1)
	c.Add(14, 1)

	assert.Equal(t, []uint{2, 14, 30}, c.ProductIDs())
}

func TestClear(t *testing.T) {
	c := cart.New()
	c.Add(1, 1)
	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Count())
}
