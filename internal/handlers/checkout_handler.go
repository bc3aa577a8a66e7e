package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carteasy/internal/checkout"
	"carteasy/internal/models"
	"carteasy/internal/repository"
	"carteasy/internal/session"
)

var errCheckoutInProgress = errors.New("checkout already in progress")

type CheckoutHandler struct {
	checkout *checkout.Service
	orders   repository.OrderRepository
	sessions session.Store
	logger   *zap.Logger
}

func NewCheckoutHandler(svc *checkout.Service, orders repository.OrderRepository, sessions session.Store, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: svc,
		orders:   orders,
		sessions: sessions,
		logger:   logger,
	}
}

// POST /v1/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sess := currentSession(c)
	req, err := h.begin(c.Request.Context(), sess.ID, form)
	if err != nil {
		switch {
		case errors.Is(err, errCheckoutInProgress):
			respondError(c, http.StatusConflict, err.Error())
		case errors.Is(err, session.ErrNotFound):
			respondError(c, http.StatusNotFound, "session not found")
		default:
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to start checkout")
		}
		return
	}

	order, err := h.checkout.Place(c.Request.Context(), req)
	// con el carrito vacío begin no tomó la marca
	if len(req.Items) > 0 {
		h.finish(c.Request.Context(), sess.ID, order, err)
	}
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Missing information",
				Message: verr.Message,
				Fields:  verr.Fields,
			})
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(c, http.StatusBadRequest, "your cart is empty")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respondError(c, http.StatusRequestTimeout, "request canceled")
		default:
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your purchase. Your order has been placed.",
		"order":   order,
	})
}

// begin toma el carrito actual y marca la sesión como en checkout.
// Un segundo checkout concurrente recibe errCheckoutInProgress.
func (h *CheckoutHandler) begin(ctx context.Context, sessionID string, form checkout.Form) (checkout.Request, error) {
	req := checkout.Request{SessionID: sessionID, Form: form}

	_, err := h.sessions.Update(ctx, sessionID, func(s *session.Session) error {
		now := time.Now().UTC()
		if s.CheckingOut(now) {
			return errCheckoutInProgress
		}
		req.Items = s.Cart.Snapshot()
		req.UserID = ""
		if s.User != nil {
			req.UserID = s.User.ID
		}
		if len(req.Items) > 0 {
			s.CheckoutUntil = now.Add(h.checkout.Lease())
		}
		return nil
	})
	return req, err
}

// finish libera la marca de checkout y, si el pedido se registró,
// descuenta del carrito solo las unidades pedidas
func (h *CheckoutHandler) finish(ctx context.Context, sessionID string, order models.Order, placeErr error) {
	_, err := h.sessions.Update(context.WithoutCancel(ctx), sessionID, func(s *session.Session) error {
		s.CheckoutUntil = time.Time{}
		if placeErr == nil {
			s.Cart.Deduct(order.Items)
		}
		return nil
	})
	if err != nil && placeErr == nil {
		h.logger.Error("order placed but cart not updated",
			zap.String("order_id", order.ID),
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

// GET /v1/orders/:id
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	sess := currentSession(c)

	order, err := h.orders.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to get order")
		return
	}

	// Cada sesión solo ve sus propios pedidos
	if order.SessionID != sess.ID {
		respondError(c, http.StatusNotFound, "order not found")
		return
	}

	c.JSON(http.StatusOK, order)
}
