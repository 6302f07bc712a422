package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/tokoku/app/cart"
	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/app/services"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
	"github.com/shashiranjanraj/tokoku/pkg/response"
	"github.com/shashiranjanraj/tokoku/pkg/session"
)

type CartController struct {
	catalog *services.CatalogService
}

func NewCartController(catalog *services.CatalogService) *CartController {
	return &CartController{catalog: catalog}
}

// cartLine is one priced row of the cart view.
type cartLine struct {
	Product  models.Product `json:"product"`
	Qty      int            `json:"qty"`
	SubTotal int64          `json:"sub_total"`
}

// View prices the session cart against the live catalog. Entries whose
// product has disappeared are skipped without touching the cart itself;
// checkout does the authoritative cleanup.
func (c *CartController) View(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	ct := cart.FromSession(sess)

	view, total, err := c.priceCart(ct)
	if err != nil {
		logger.Error("cart: view", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load cart")
		return
	}

	response.Success(w, map[string]interface{}{
		"items": view,
		"count": ct.Count(),
		"total": total,
	})
}

// Add puts qty more of a product into the cart. Repeated adds sum up.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID uint `json:"product_id"`
		Qty       int  `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ProductID == 0 {
		response.Error(w, http.StatusUnprocessableEntity, "product_id is required")
		return
	}

	sess := session.FromCtx(r)
	ct := cart.FromSession(sess)
	ct.Add(body.ProductID, body.Qty)
	ct.Store(sess)
	if err := sess.Save(w); err != nil {
		logger.Error("cart: save session", "error", err)
	}

	response.Success(w, map[string]interface{}{
		"count": ct.Count(),
		"items": ct.Items(),
	})
}

// Update replaces the whole cart with the posted quantities. Entries with
// qty <= 0 are removed.
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantities map[uint]int `json:"quantities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := session.FromCtx(r)
	ct := cart.FromSession(sess)
	ct.SetQuantities(body.Quantities)
	ct.Store(sess)
	if err := sess.Save(w); err != nil {
		logger.Error("cart: save session", "error", err)
	}

	response.Success(w, map[string]interface{}{
		"count": ct.Count(),
		"items": ct.Items(),
	})
}

func (c *CartController) priceCart(ct *cart.Cart) ([]cartLine, int64, error) {
	if ct.Empty() {
		return []cartLine{}, 0, nil
	}

	products, err := c.catalog.FindByIDs(ct.ProductIDs())
	if err != nil {
		return nil, 0, err
	}

	var (
		lines []cartLine
		total int64
	)
	for _, p := range products {
		qty := ct.Qty(p.ID)
		sub := p.Price * int64(qty)
		lines = append(lines, cartLine{Product: p, Qty: qty, SubTotal: sub})
		total += sub
	}
	return lines, total, nil
}
