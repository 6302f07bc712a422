package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shashiranjanraj/tokoku/app/cart"
	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/internal/whatsapp"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
	"github.com/shashiranjanraj/tokoku/pkg/metrics"
	"github.com/shashiranjanraj/tokoku/pkg/ws"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingField = errors.New("name, wa number and address are required")
)

// CheckoutInput carries the customer details submitted with the cart.
type CheckoutInput struct {
	Name    string `json:"name"`
	WA      string `json:"wa"`
	Address string `json:"address"`
	Payment string `json:"payment"`
}

// Receipt is what checkout hands back: the stored order and the WhatsApp
// link the customer is redirected to.
type Receipt struct {
	Order       models.Order `json:"order"`
	Message     string       `json:"message"`
	RedirectURL string       `json:"redirect_url"`
}

// CheckoutService turns a session cart into a persisted order.
type CheckoutService struct {
	products  *repositories.ProductRepository
	orders    *repositories.OrderRepository
	feed      *ws.Feed
	shopPhone string
}

func NewCheckoutService(products *repositories.ProductRepository, orders *repositories.OrderRepository, feed *ws.Feed, shopPhone string) *CheckoutService {
	return &CheckoutService{products: products, orders: orders, feed: feed, shopPhone: shopPhone}
}

// Checkout validates the input, prices the cart against the current
// catalog and persists the order atomically. Cart entries whose product
// no longer exists are dropped without complaint; if nothing survives the
// cart counts as empty. Item rows snapshot name and price, so later
// catalog edits never rewrite history.
func (s *CheckoutService) Checkout(c *cart.Cart, in CheckoutInput) (Receipt, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.WA = strings.TrimSpace(in.WA)
	in.Address = strings.TrimSpace(in.Address)
	in.Payment = strings.TrimSpace(in.Payment)

	if c.Empty() {
		return Receipt{}, ErrEmptyCart
	}
	if in.Name == "" || in.WA == "" || in.Address == "" {
		return Receipt{}, ErrMissingField
	}
	if in.Payment == "" {
		in.Payment = "Transfer"
	}

	products, err := s.products.FindByIDs(c.ProductIDs())
	if err != nil {
		return Receipt{}, err
	}

	var (
		items []models.OrderItem
		total int64
	)
	for _, p := range products {
		qty := c.Qty(p.ID)
		if qty < 1 {
			continue
		}
		sub := p.Price * int64(qty)
		items = append(items, models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       qty,
			SubTotal:  sub,
		})
		total += sub
	}
	if len(items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	order := models.Order{
		CustName: in.Name,
		CustWA:   in.WA,
		Address:  in.Address,
		Payment:  in.Payment,
		Total:    total,
	}
	if err := s.orders.CreateWithItems(&order, items); err != nil {
		return Receipt{}, err
	}

	metrics.RecordOrder(order.Total)
	s.announce(order)

	msg := whatsapp.BuildMessage(order, order.Items)
	rec := Receipt{
		Order:       order,
		Message:     msg,
		RedirectURL: whatsapp.RedirectURL(s.shopPhone, msg),
	}

	c.Clear()
	return rec, nil
}

// announce pushes the new order onto the admin live feed.
func (s *CheckoutService) announce(order models.Order) {
	if s.feed == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"event": "order.created",
		"order": order,
	})
	if err != nil {
		logger.Warn("checkout: marshal feed payload", "error", err)
		return
	}
	s.feed.Publish(payload)
}
