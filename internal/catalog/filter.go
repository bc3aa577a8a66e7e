package catalog

import (
	"cmp"
	"slices"
	"strings"

	"carteasy/internal/models"
)

// Claves de ordenamiento soportadas
const (
	SortFeatured   = "featured"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortRatingDesc = "rating-desc"
)

// SortKeys lista las claves válidas en el orden en que se ofrecen
var SortKeys = []string{SortFeatured, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortRatingDesc}

// DefaultFilterOptions retorna los filtros iniciales del listado
func DefaultFilterOptions(list []models.Product) models.FilterOptions {
	minPrice, maxPrice := PriceBounds(list)
	return models.FilterOptions{
		Category: AllCategories,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		SortBy:   SortFeatured,
	}
}

// Apply filtra y ordena la lista sin modificar la entrada
func Apply(list []models.Product, opts models.FilterOptions) []models.Product {
	query := strings.ToLower(opts.SearchQuery)

	filtered := make([]models.Product, 0, len(list))
	for _, p := range list {
		if !matchesCategory(p, opts.Category) {
			continue
		}
		if p.Price < opts.MinPrice || p.Price > opts.MaxPrice {
			continue
		}
		if opts.InStock && !p.InStock {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		filtered = append(filtered, p)
	}

	slices.SortStableFunc(filtered, comparator(opts.SortBy))
	return filtered
}

func matchesCategory(p models.Product, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return strings.EqualFold(p.Category, category)
}

func comparator(sortBy string) func(a, b models.Product) int {
	switch sortBy {
	case SortPriceAsc:
		return func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) }
	case SortNameAsc:
		return func(a, b models.Product) int { return compareNames(a.Name, b.Name) }
	case SortNameDesc:
		return func(a, b models.Product) int { return compareNames(b.Name, a.Name) }
	case SortRatingDesc:
		return func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		return func(a, b models.Product) int {
			if a.IsFeatured() != b.IsFeatured() {
				if a.IsFeatured() {
					return -1
				}
				return 1
			}
			return cmp.Compare(b.Rating, a.Rating)
		}
	}
}

func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// IsValidSort indica si la clave de ordenamiento es conocida
func IsValidSort(sortBy string) bool {
	return slices.Contains(SortKeys, sortBy)
}
