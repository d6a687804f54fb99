package domain

import "time"

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

// MetadataFacet is a named filterable attribute scoped to a category, e.g.
// "Color". Facet and value identifiers are slugs chosen at seed time.
type MetadataFacet struct {
	ID         string          `json:"id"`
	CategoryID int64           `json:"-"`
	Name       string          `json:"name"`
	Values     []MetadataValue `json:"values"`
}

type MetadataValue struct {
	ID      string `json:"id"`
	FacetID string `json:"-"`
	Label   string `json:"label"`
}
