package httpserver

import (
	"errors"
	"strconv"

	"storefront-api/internal/domain"
	productrepo "storefront-api/internal/repository/product"

	"github.com/gin-gonic/gin"
)

// productSummary is the listing shape: major-unit price plus the formatted
// display string, and a single representative image.
type productSummary struct {
	ID             int64   `json:"id"`
	Label          string  `json:"label"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Image          string  `json:"image"`
	Liked          bool    `json:"liked"`
}

type productDetail struct {
	ID             int64        `json:"id"`
	Label          string       `json:"label"`
	Price          float64      `json:"price"`
	ViewsCount     int64        `json:"views_count"`
	FormattedPrice string       `json:"formatted_price"`
	Description    string       `json:"description"`
	CategoryID     int64        `json:"categoryId"`
	Images         []imageEntry `json:"images"`
}

type imageEntry struct {
	URL string `json:"url"`
}

type categorySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (h *handlers) toProductSummary(p domain.Product) productSummary {
	return productSummary{
		ID:             p.ID,
		Label:          p.Label,
		Price:          p.PriceCents.Float(),
		FormattedPrice: p.PriceCents.Formatted(),
		Image:          productImageURL(h.deps.AssetBaseURL, p),
	}
}

func (h *handlers) toProductDetail(p domain.Product) productDetail {
	images := make([]imageEntry, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, imageEntry{URL: assetURL(h.deps.AssetBaseURL, img.URL)})
	}
	if len(images) == 0 {
		images = append(images, imageEntry{URL: assetURL(h.deps.AssetBaseURL, "")})
	}
	return productDetail{
		ID:             p.ID,
		Label:          p.Label,
		Price:          p.PriceCents.Float(),
		ViewsCount:     p.ViewsCount,
		FormattedPrice: p.PriceCents.Formatted(),
		Description:    p.Description,
		CategoryID:     p.CategoryID,
		Images:         images,
	}
}

func toCategorySummary(c domain.Category) categorySummary {
	return categorySummary{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func (h *handlers) listProducts(c *gin.Context) {
	q, fields := parseProductListQuery(c.Query("orderby"), c.Query("limit"), c.Query("metadata"))
	if fields != nil {
		h.f.failFields(c, "invalid listing parameters", fields)
		return
	}

	products, err := h.deps.Catalog.ListProducts(c.Request.Context(), productrepo.ListFilter{
		OrderBy:  q.OrderBy,
		Limit:    q.Limit,
		Metadata: q.Metadata,
	})
	if err != nil {
		h.f.fail(c, 500, "could not list products", err)
		return
	}

	out := make([]productSummary, 0, len(products))
	for _, p := range products {
		out = append(out, h.toProductSummary(p))
	}
	respondOK(c, gin.H{"products": out})
}

func (h *handlers) showProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.f.failFields(c, "invalid product id", map[string]string{"id": "id must be a positive integer"})
		return
	}

	p, cat, err := h.deps.Catalog.ProductDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.f.notFound(c, "product not found")
			return
		}
		h.f.fail(c, 500, "could not load product", err)
		return
	}

	respondOK(c, gin.H{
		"product":  h.toProductDetail(*p),
		"category": toCategorySummary(*cat),
	})
}

func (h *handlers) relatedProducts(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.f.failFields(c, "invalid product id", map[string]string{"id": "id must be a positive integer"})
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.f.failFields(c, "invalid listing parameters", map[string]string{"limit": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	related, cat, err := h.deps.Catalog.RelatedProducts(c.Request.Context(), id, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.f.notFound(c, "product not found")
			return
		}
		h.f.fail(c, 500, "could not list related products", err)
		return
	}

	out := make([]gin.H, 0, len(related))
	for _, p := range related {
		out = append(out, gin.H{
			"product":  h.toProductDetail(p),
			"category": toCategorySummary(*cat),
		})
	}
	respondOK(c, gin.H{"products": out})
}

func (h *handlers) listBanners(c *gin.Context) {
	banners, err := h.deps.Catalog.ListBanners(c.Request.Context())
	if err != nil {
		h.f.fail(c, 500, "could not list banners", err)
		return
	}
	out := make([]gin.H, 0, len(banners))
	for _, b := range banners {
		out = append(out, gin.H{
			"img":  assetURL(h.deps.AssetBaseURL, b.FilePath),
			"link": b.Link,
		})
	}
	respondOK(c, gin.H{"banners": out})
}
