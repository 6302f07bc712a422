// Package cart holds the per-session cart: an explicit value owned by the
// request, loaded from and stored back into the session — never ambient
// global state.
package cart

import "sort"

// Cart maps product id → quantity. Quantities are always positive; an entry
// driven to zero is removed, never stored.
type Cart struct {
	items map[uint]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{items: make(map[uint]int)}
}

// Add puts qty of productID into the cart, summing with any existing
// quantity. Quantities below 1 are clamped to 1; non-positive product ids
// are ignored — adding to a cart is a best-effort UI action, not an error
// path.
func (c *Cart) Add(productID uint, qty int) {
	if productID == 0 {
		return
	}
	if qty < 1 {
		qty = 1
	}
	c.items[productID] += qty
}

// SetQuantities replaces the cart wholesale with the supplied pairs.
// Pairs with qty <= 0 are dropped entirely; entries absent from the input
// are removed. This is the bulk-update path behind the cart edit form.
func (c *Cart) SetQuantities(quantities map[uint]int) {
	next := make(map[uint]int, len(quantities))
	for id, qty := range quantities {
		if id == 0 || qty <= 0 {
			continue
		}
		next[id] = qty
	}
	c.items = next
}

// Qty returns the quantity for productID, zero when absent.
func (c *Cart) Qty(productID uint) int {
	return c.items[productID]
}

// Count returns the total number of items across all entries.
func (c *Cart) Count() int {
	n := 0
	for _, qty := range c.items {
		n += qty
	}
	return n
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Empty reports whether the cart has no entries.
func (c *Cart) Empty() bool { return len(c.items) == 0 }

// Clear removes every entry.
func (c *Cart) Clear() {
	c.items = make(map[uint]int)
}

// Items returns a copy of the id → qty mapping.
func (c *Cart) Items() map[uint]int {
	out := make(map[uint]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// ProductIDs returns the distinct product ids in ascending order, for the
// bulk catalog lookup at checkout.
func (c *Cart) ProductIDs() []uint {
	ids := make([]uint, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
