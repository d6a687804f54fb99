package domain

import "time"

type Product struct {
	ID          int64          `json:"id"`
	Label       string         `json:"label"`
	Description string         `json:"description,omitempty"`
	PriceCents  Cents          `json:"priceCents"`
	ViewsCount  int64          `json:"viewsCount"`
	SalesCount  int64          `json:"salesCount"`
	CategoryID  int64          `json:"categoryId"`
	Images      []ProductImage `json:"images,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"-"`
	URL       string `json:"url"`
	Position  int    `json:"-"`
}

// FirstImageURL returns the relative path of the first image, or "" if the
// product has none.
func (p Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
