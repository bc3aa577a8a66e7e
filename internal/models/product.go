package models

// Product representa un producto del catálogo. Los precios son rupias enteras.
type Product struct {
	ID            string  `json:"id" bson:"_id"`
	Name          string  `json:"name" bson:"name"`
	Description   string  `json:"description" bson:"description"`
	Price         int64   `json:"price" bson:"price"`
	ImageURL      string  `json:"imageUrl" bson:"image_url"`
	Category      string  `json:"category" bson:"category"`
	InStock       bool    `json:"inStock" bson:"in_stock"`
	Rating        float64 `json:"rating" bson:"rating"`
	FeaturedBadge string  `json:"featuredBadge,omitempty" bson:"featured_badge,omitempty"`
}

// IsFeatured indica si el producto tiene una etiqueta promocional
func (p Product) IsFeatured() bool {
	return p.FeaturedBadge != ""
}

// FilterOptions representa los filtros del listado
type FilterOptions struct {
	Category    string `json:"category"`
	MinPrice    int64  `json:"minPrice"`
	MaxPrice    int64  `json:"maxPrice"`
	SearchQuery string `json:"searchQuery"`
	InStock     bool   `json:"inStock"`
	SortBy      string `json:"sortBy"`
}
