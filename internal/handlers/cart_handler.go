package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carteasy/internal/cart"
	"carteasy/internal/catalog"
	"carteasy/internal/checkout"
	"carteasy/internal/models"
	"carteasy/internal/repository"
	"carteasy/internal/session"
)

var (
	errOutOfStock    = errors.New("product is out of stock")
	errQuantityLimit = fmt.Errorf("at most %d units per product", cart.MaxQuantity)
)

type CartHandler struct {
	products repository.ProductRepository
	sessions session.Store
	logger   *zap.Logger
}

func NewCartHandler(products repository.ProductRepository, sessions session.Store, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		products: products,
		sessions: sessions,
		logger:   logger,
	}
}

type CartLineView struct {
	Product           ProductView `json:"product"`
	Quantity          int         `json:"quantity"`
	Subtotal          int64       `json:"subtotal"`
	FormattedSubtotal string      `json:"formattedSubtotal"`
}

type CartView struct {
	Items          []CartLineView      `json:"items"`
	ItemCount      int                 `json:"itemCount"`
	Total          int64               `json:"total"`
	FormattedTotal string              `json:"formattedTotal"`
	Summary        models.OrderSummary `json:"summary"`
}

func newCartView(c *cart.Cart) CartView {
	lines := make([]CartLineView, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, CartLineView{
			Product:           ProductView{Product: item.Product, FormattedPrice: catalog.FormatPrice(item.Product.Price)},
			Quantity:          item.Quantity,
			Subtotal:          item.Subtotal(),
			FormattedSubtotal: catalog.FormatPrice(item.Subtotal()),
		})
	}
	return CartView{
		Items:          lines,
		ItemCount:      c.ItemCount(),
		Total:          c.Total(),
		FormattedTotal: catalog.FormatPrice(c.Total()),
		Summary:        checkout.Summarize(c.Total()),
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1,max=99"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=99"`
}

// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, newCartView(&sess.Cart))
}

// POST /v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.products.FindByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to get product")
		return
	}
	if !product.InStock {
		respondError(c, http.StatusConflict, errOutOfStock.Error())
		return
	}

	h.update(c, http.StatusCreated, func(s *session.Session) error {
		if !s.Cart.CanAdd(product.ID, req.Quantity) {
			return errQuantityLimit
		}
		s.Cart.AddQuantity(product, req.Quantity)
		return nil
	})
}

// PATCH /v1/cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	productID := c.Param("id")
	h.update(c, http.StatusOK, func(s *session.Session) error {
		if !s.Cart.Contains(productID) {
			return repository.ErrProductNotFound
		}
		s.Cart.UpdateQuantity(productID, *req.Quantity)
		return nil
	})
}

// DELETE /v1/cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("id")
	h.update(c, http.StatusOK, func(s *session.Session) error {
		if !s.Cart.Contains(productID) {
			return repository.ErrProductNotFound
		}
		s.Cart.Remove(productID)
		return nil
	})
}

// DELETE /v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.update(c, http.StatusOK, func(s *session.Session) error {
		s.Cart.Clear()
		return nil
	})
}

func (h *CartHandler) update(c *gin.Context, status int, fn func(*session.Session) error) {
	sess := currentSession(c)

	updated, err := h.sessions.Update(c.Request.Context(), sess.ID, fn)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			respondError(c, http.StatusNotFound, "product not in cart")
		case errors.Is(err, errQuantityLimit):
			respondError(c, http.StatusConflict, err.Error())
		case errors.Is(err, session.ErrNotFound):
			respondError(c, http.StatusNotFound, "session not found")
		default:
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to update cart")
		}
		return
	}

	c.JSON(status, newCartView(&updated.Cart))
}
