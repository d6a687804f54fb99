package httpserver

import (
	"errors"
	"net/http"

	"storefront-api/internal/domain"
	cartsvc "storefront-api/internal/service/cart"

	"github.com/gin-gonic/gin"
)

func (h *handlers) mountCart(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		h.f.failFields(c, "invalid cart ids", map[string]string{"ids": err.Error()})
		return
	}

	products, err := h.deps.Cart.Mount(c.Request.Context(), ids)
	if err != nil {
		h.f.fail(c, 500, "could not resolve cart products", err)
		return
	}

	out := make([]productSummary, 0, len(products))
	for _, p := range products {
		out = append(out, h.toProductSummary(p))
	}
	respondOK(c, gin.H{"products": out})
}

func (h *handlers) shippingQuote(c *gin.Context) {
	zipcode := c.Query("zipcode")
	if !zipcodeRe.MatchString(zipcode) {
		h.f.failFields(c, "invalid zipcode", map[string]string{"zipcode": "zipcode must contain exactly 8 digits"})
		return
	}

	cost, days, err := h.deps.Shipping.Quote(c.Request.Context(), zipcode)
	if err != nil {
		h.f.fail(c, 500, "could not estimate shipping", err)
		return
	}
	respondOK(c, gin.H{
		"zipcode": zipcode,
		"cost":    cost.Float(),
		"days":    days,
	})
}

// finishCart is the checkout endpoint: resolves the cart against catalog
// prices and materializes the order in one transaction.
func (h *handlers) finishCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.f.unauthorized(c, "authentication required")
		return
	}

	var req finishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.f.failFields(c, "invalid request body", map[string]string{"body": "body must be valid JSON"})
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		h.f.failFields(c, "invalid checkout request", fields)
		return
	}

	result, err := h.deps.Cart.Checkout(c.Request.Context(), user, cartsvc.CheckoutInput{
		Cart:      req.Cart,
		AddressID: req.AddressID,
	})
	if err != nil {
		var unknown *domain.UnknownProductError
		var badQty *domain.InvalidQuantityError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.f.failFields(c, "invalid checkout request", map[string]string{"addressId": "address not found"})
		case errors.As(err, &unknown):
			h.f.failFields(c, "invalid checkout request", map[string]string{"cart": unknown.Error()})
		case errors.As(err, &badQty):
			h.f.failFields(c, "invalid checkout request", map[string]string{"cart": badQty.Error()})
		case errors.Is(err, cartsvc.ErrEmptyCart):
			h.f.failFields(c, "invalid checkout request", map[string]string{"cart": err.Error()})
		default:
			h.f.fail(c, http.StatusInternalServerError, "could not create order", err)
		}
		return
	}

	ordersCreatedTotal.Inc()
	h.logger.Printf("order created id=%d user_id=%d total_cents=%d", result.Order.ID, user.ID, result.Order.TotalCents)
	respondOK(c, gin.H{"url": result.CheckoutURL})
}
