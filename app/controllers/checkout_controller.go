package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/tokoku/app/cart"
	"github.com/shashiranjanraj/tokoku/app/services"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
	"github.com/shashiranjanraj/tokoku/pkg/response"
	"github.com/shashiranjanraj/tokoku/pkg/session"
)

type CheckoutController struct {
	service *services.CheckoutService
}

func NewCheckoutController(service *services.CheckoutService) *CheckoutController {
	return &CheckoutController{service: service}
}

// Checkout persists the session cart as an order and hands the customer
// off to WhatsApp. Browser form posts get a 303 redirect to wa.me; JSON
// clients get the receipt with the redirect URL in the body.
func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	in, wantsJSON, err := checkoutForm(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := session.FromCtx(r)
	ct := cart.FromSession(sess)

	receipt, err := c.service.Checkout(ct, in)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, services.ErrMissingField):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		logger.Error("checkout", "error", err)
		response.Error(w, http.StatusInternalServerError, "checkout failed")
		return
	}

	// The cart was cleared by the service; persist the empty cart.
	ct.Store(sess)
	if err := sess.Save(w); err != nil {
		logger.Error("checkout: save session", "error", err)
	}

	if wantsJSON {
		response.Created(w, receipt)
		return
	}
	http.Redirect(w, r, receipt.RedirectURL, http.StatusSeeOther)
}

func checkoutForm(r *http.Request) (services.CheckoutInput, bool, error) {
	var in services.CheckoutInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return in, false, err
		}
		in.Name = r.FormValue("name")
		in.WA = r.FormValue("wa")
		in.Address = r.FormValue("address")
		in.Payment = r.FormValue("payment")
		return in, false, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, true, err
	}
	return in, true, nil
}
