package entity

// DefaultCategoryColor is used when a business references a category name
// that no longer exists in the registry. A stale name never fails a query.
const DefaultCategoryColor = "#3B82F6"

// CatalogSnapshot is the read-only handle the catalog engine works over.
// Businesses, plans and categories are loaded independently by the feed and
// never mutated by this core.
type CatalogSnapshot struct {
	Businesses []*Business
	Plans      []*Plan
	Categories []*Category
}

// CategoryTag is a category name resolved to its display color.
type CategoryTag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RankedBusiness pairs a catalog hit with its resolved category metadata.
type RankedBusiness struct {
	Business   *Business     `json:"business"`
	Categories []CategoryTag `json:"categories"`
}
