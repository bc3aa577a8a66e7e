// Package catalog contiene el catálogo estático de la tienda y el pipeline
// de filtrado y ordenamiento del listado.
package catalog

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"carteasy/internal/models"
)

// AllCategories es el valor de categoría que desactiva el filtro
const AllCategories = "All"

// relatedPriceWindow es la diferencia de precio máxima para "productos relacionados"
const relatedPriceWindow = 15000

// Categories es la lista fija de categorías que muestra la tienda
var Categories = []string{
	AllCategories,
	"Electronics",
	"Wearables",
	"Fashion",
	"Furniture",
	"Appliances",
	"Smart Home",
	"Gaming",
	"Beauty",
}

// Products retorna una copia del catálogo estático
func Products() []models.Product {
	return slices.Clone(products)
}

// FindByID busca un producto por ID dentro de una lista
func FindByID(list []models.Product, id string) (models.Product, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// PriceBounds retorna el precio mínimo y máximo de la lista
func PriceBounds(list []models.Product) (minPrice, maxPrice int64) {
	if len(list) == 0 {
		return 0, 0
	}
	minPrice, maxPrice = math.MaxInt64, math.MinInt64
	for _, p := range list {
		minPrice = min(minPrice, p.Price)
		maxPrice = max(maxPrice, p.Price)
	}
	return minPrice, maxPrice
}

// Featured retorna hasta n productos destacados: con etiqueta o rating >= 4.5
func Featured(list []models.Product, n int) []models.Product {
	featured := make([]models.Product, 0, n)
	for _, p := range list {
		if len(featured) == n {
			break
		}
		if p.IsFeatured() || p.Rating >= 4.5 {
			featured = append(featured, p)
		}
	}
	return featured
}

// Related retorna hasta n productos de la misma categoría o de precio similar
func Related(list []models.Product, product models.Product, n int) []models.Product {
	related := make([]models.Product, 0, n)
	for _, p := range list {
		if len(related) == n {
			break
		}
		if p.ID == product.ID {
			continue
		}
		diff := p.Price - product.Price
		if diff < 0 {
			diff = -diff
		}
		if p.Category == product.Category || diff < relatedPriceWindow {
			related = append(related, p)
		}
	}
	return related
}

// NormalizeCategory convierte la categoría del query string a su forma visible
// ("electronics" -> "Electronics")
func NormalizeCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AllCategories
	}
	return strings.ToUpper(raw[:1]) + raw[1:]
}

// IsCategory indica si name es una de las Categories (sin distinguir mayúsculas)
func IsCategory(name string) bool {
	for _, c := range Categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// FormatPrice formatea un importe en rupias con agrupación en-IN y sin decimales
func FormatPrice(amount int64) string {
	sign := ""
	digits := strconv.FormatInt(amount, 10)
	if amount < 0 {
		sign = "-"
		digits = digits[1:]
	}
	return sign + "₹" + groupIndian(digits)
}

// groupIndian agrupa los últimos tres dígitos y luego de dos en dos (1,20,000)
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
