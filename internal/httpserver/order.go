package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-api/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.f.unauthorized(c, "authentication required")
		return
	}

	orders, err := h.deps.Orders.List(c.Request.Context(), user.ID)
	if err != nil {
		h.f.fail(c, http.StatusInternalServerError, "could not list orders", err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, gin.H{
			"id":        o.ID,
			"status":    o.Status,
			"total":     o.TotalCents.Float(),
			"createdAt": o.CreatedAt,
		})
	}
	respondOK(c, gin.H{"orders": out})
}

func (h *handlers) showOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.f.unauthorized(c, "authentication required")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.f.failFields(c, "invalid order id", map[string]string{"id": "id must be a positive integer"})
		return
	}

	o, products, err := h.deps.Orders.Get(c.Request.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.f.notFound(c, "order not found")
			return
		}
		h.f.fail(c, http.StatusInternalServerError, "could not load order", err)
		return
	}

	items := make([]gin.H, 0, len(o.Items))
	for _, it := range o.Items {
		entry := gin.H{
			"id":       it.ID,
			"quantity": it.Quantity,
			"price":    it.PriceCents.Float(),
		}
		if p, ok := products[it.ProductID]; ok {
			entry["product"] = gin.H{
				"id":    p.ID,
				"label": p.Label,
				"price": p.PriceCents.Float(),
				"image": productImageURL(h.deps.AssetBaseURL, p),
			}
		}
		items = append(items, entry)
	}

	respondOK(c, gin.H{
		"order": gin.H{
			"id":                 o.ID,
			"status":             o.Status,
			"total":              o.TotalCents.Float(),
			"shippingCost":       o.Shipping.CostCents.Float(),
			"shippingDays":       o.Shipping.Days,
			"shippingZipcode":    o.Shipping.Zipcode,
			"shippingStreet":     o.Shipping.Street,
			"shippingNumber":     o.Shipping.Number,
			"shippingCity":       o.Shipping.City,
			"shippingState":      o.Shipping.State,
			"shippingCountry":    o.Shipping.Country,
			"shippingComplement": o.Shipping.Complement,
			"user": gin.H{
				"name":  user.Name,
				"email": user.Email,
			},
			"orderItems": items,
		},
	})
}

// orderSession returns the checkout-session reference for an order. The
// payment collaborator is out of scope, so this mirrors its contract with a
// stub payload.
func (h *handlers) orderSession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.f.unauthorized(c, "authentication required")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.f.failFields(c, "invalid order id", map[string]string{"id": "id must be a positive integer"})
		return
	}

	o, _, err := h.deps.Orders.Get(c.Request.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.f.notFound(c, "order not found")
			return
		}
		h.f.fail(c, http.StatusInternalServerError, "could not load order", err)
		return
	}

	respondOK(c, gin.H{"orderId": o.ID})
}
