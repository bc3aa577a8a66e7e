package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carteasy/internal/cache"
	"carteasy/internal/catalog"
	"carteasy/internal/models"
	"carteasy/internal/repository"
)

const (
	featuredCount = 4
	relatedCount  = 4

	allProductsKey = "products:all"
	listKeyPrefix  = "products:list:"
)

type ProductHandler struct {
	repo   repository.ProductRepository
	cache  *cache.Cache[[]models.Product]
	logger *zap.Logger
}

func NewProductHandler(repo repository.ProductRepository, c *cache.Cache[[]models.Product], logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// ProductView agrega el precio formateado a un producto
type ProductView struct {
	models.Product
	FormattedPrice string `json:"formattedPrice"`
}

func newProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{Product: p, FormattedPrice: catalog.FormatPrice(p.Price)})
	}
	return views
}

// products obtiene el catálogo completo (con caché)
func (h *ProductHandler) products(c *gin.Context) ([]models.Product, error) {
	if cached, found := h.cache.Get(allProductsKey); found {
		return cached, nil
	}

	products, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		return nil, err
	}

	// Los listados guardados se calcularon con el catálogo anterior
	h.cache.DeleteByPrefix(listKeyPrefix)
	h.cache.Set(allProductsKey, products)
	return products, nil
}

// GET /v1/home
func (h *ProductHandler) Home(c *gin.Context) {
	products, err := h.products(c)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to load products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"featured":   newProductViews(catalog.Featured(products, featuredCount)),
		"categories": catalog.Categories,
	})
}

// GET /v1/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories})
}

// GET /v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.products(c)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to load products")
		return
	}

	opts, err := h.buildFilterOptions(c, products)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	filtered := h.filtered(products, opts)

	minPrice, maxPrice := catalog.PriceBounds(products)
	c.JSON(http.StatusOK, gin.H{
		"products": newProductViews(filtered),
		"count":    len(filtered),
		"filters":  opts,
		"priceBounds": gin.H{
			"min": minPrice,
			"max": maxPrice,
		},
		"categories": catalog.Categories,
		"sortKeys":   catalog.SortKeys,
	})
}

// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to get product")
		return
	}

	products, err := h.products(c)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to load products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":        product,
		"formattedPrice": catalog.FormatPrice(product.Price),
		"related":        newProductViews(catalog.Related(products, product, relatedCount)),
	})
}

// --- Métodos auxiliares ---

// filtered aplica los filtros. Solo se cachean los listados de categorías
// conocidas sin búsqueda de texto: el texto libre tendría claves ilimitadas.
func (h *ProductHandler) filtered(products []models.Product, opts models.FilterOptions) []models.Product {
	if opts.SearchQuery != "" || !catalog.IsCategory(opts.Category) {
		return catalog.Apply(products, opts)
	}

	cacheKey := fmt.Sprintf(
		"%scat:%s_min:%d_max:%d_stock:%v_sort:%s",
		listKeyPrefix, strings.ToLower(opts.Category), opts.MinPrice, opts.MaxPrice, opts.InStock, opts.SortBy,
	)
	if cached, found := h.cache.Get(cacheKey); found {
		return cached
	}

	filtered := catalog.Apply(products, opts)
	h.cache.Set(cacheKey, filtered)
	return filtered
}

// buildFilterOptions construye los filtros a partir del query string
func (h *ProductHandler) buildFilterOptions(c *gin.Context, products []models.Product) (models.FilterOptions, error) {
	opts := catalog.DefaultFilterOptions(products)

	if cat := c.Query("category"); cat != "" {
		opts.Category = catalog.NormalizeCategory(cat)
	}
	opts.SearchQuery = c.Query("q")

	if v := c.Query("min_price"); v != "" {
		minPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil || minPrice < 0 {
			return opts, fmt.Errorf("invalid min_price %q", v)
		}
		opts.MinPrice = minPrice
	}
	if v := c.Query("max_price"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil || maxPrice < 0 {
			return opts, fmt.Errorf("invalid max_price %q", v)
		}
		opts.MaxPrice = maxPrice
	}
	if opts.MinPrice > opts.MaxPrice {
		return opts, fmt.Errorf("min_price must not exceed max_price")
	}

	if v := c.Query("in_stock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid in_stock %q", v)
		}
		opts.InStock = inStock
	}

	if sortBy := c.Query("sort"); sortBy != "" {
		if !catalog.IsValidSort(sortBy) {
			return opts, fmt.Errorf("invalid sort %q", sortBy)
		}
		opts.SortBy = sortBy
	}

	return opts, nil
}
