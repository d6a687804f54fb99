package httpserver

import (
	"errors"

	"storefront-api/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *handlers) categoryMetadata(c *gin.Context) {
	slug := c.Param("slug")

	cat, facets, err := h.deps.Catalog.CategoryMetadata(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.f.notFound(c, "category not found")
			return
		}
		h.f.fail(c, 500, "could not load category metadata", err)
		return
	}

	out := make([]gin.H, 0, len(facets))
	for _, facet := range facets {
		values := make([]gin.H, 0, len(facet.Values))
		for _, v := range facet.Values {
			values = append(values, gin.H{"id": v.ID, "label": v.Label})
		}
		out = append(out, gin.H{"id": facet.ID, "name": facet.Name, "values": values})
	}

	respondOK(c, gin.H{
		"category": toCategorySummary(*cat),
		"metadata": out,
	})
}
