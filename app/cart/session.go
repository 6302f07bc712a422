package cart

import (
	"strconv"

	"github.com/shashiranjanraj/tokoku/pkg/session"
)

const sessionKey = "cart"

// FromSession rebuilds the cart stored in sess. A missing or malformed
// entry yields an empty cart; a stale cart is never an error.
func FromSession(sess *session.Session) *Cart {
	raw, ok := sess.Get(sessionKey)
	if !ok {
		return New()
	}
	return fromRaw(raw)
}

// fromRaw accepts both shapes a stored cart can come back in: the Redis
// store round-trips through JSON (string keys, float64 values), the
// memory store hands back exactly what Store put in.
func fromRaw(raw interface{}) *Cart {
	c := New()

	switch m := raw.(type) {
	case map[string]interface{}:
		for key, val := range m {
			id, err := strconv.ParseUint(key, 10, 32)
			if err != nil || id == 0 {
				continue
			}
			switch qty := val.(type) {
			case float64:
				if qty >= 1 {
					c.items[uint(id)] = int(qty)
				}
			case int:
				if qty >= 1 {
					c.items[uint(id)] = qty
				}
			}
		}
	case map[string]int:
		for key, qty := range m {
			id, err := strconv.ParseUint(key, 10, 32)
			if err == nil && id > 0 && qty >= 1 {
				c.items[uint(id)] = qty
			}
		}
	}

	return c
}

// Store writes the cart back into sess. Call sess.Save afterwards.
func (c *Cart) Store(sess *session.Session) {
	out := make(map[string]int, len(c.items))
	for id, qty := range c.items {
		out[strconv.FormatUint(uint64(id), 10)] = qty
	}
	sess.Set(sessionKey, out)
}
