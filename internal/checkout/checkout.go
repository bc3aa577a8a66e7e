// Package checkout implementa el flujo de compra simulado.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"carteasy/internal/events"
	"carteasy/internal/latency"
	"carteasy/internal/models"
	"carteasy/internal/repository"
)

const (
	freeShippingThreshold = 50000
	shippingCost          = 500
)

var (
	ErrEmptyCart = errors.New("cart is empty")

	taxRate = decimal.RequireFromString("0.18")
)

// Form es el formulario de checkout; todos los campos son obligatorios
type Form struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	ZipCode    string `json:"zipCode" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	CardExpiry string `json:"cardExpiry" validate:"required"`
	CardCvc    string `json:"cardCvc" validate:"required"`
}

// ValidationError representa campos obligatorios vacíos
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Fields, ", "))
}

// Summarize calcula envío, impuesto y total a partir del subtotal
func Summarize(subtotal int64) models.OrderSummary {
	sub := decimal.NewFromInt(subtotal)

	shipping := decimal.NewFromInt(shippingCost)
	if subtotal > freeShippingThreshold {
		shipping = decimal.Zero
	}
	tax := sub.Mul(taxRate)

	return models.OrderSummary{
		Subtotal: sub,
		Shipping: shipping,
		Tax:      tax,
		Total:    sub.Add(shipping).Add(tax),
	}
}

// Request reúne lo necesario para confirmar un pedido
type Request struct {
	SessionID string
	UserID    string
	Items     []models.CartItem
	Form      Form
}

type Service struct {
	orders    repository.OrderRepository
	publisher events.Publisher
	delay     time.Duration
	validate  *validator.Validate
	logger    *zap.Logger
}

// leaseGrace cubre el tiempo de guardar y publicar el pedido después del pago
const leaseGrace = 30 * time.Second

func NewService(orders repository.OrderRepository, publisher events.Publisher, delay time.Duration, logger *zap.Logger) *Service {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.Split(f.Tag.Get("json"), ",")[0]
	})

	return &Service{
		orders:    orders,
		publisher: publisher,
		delay:     delay,
		validate:  validate,
		logger:    logger,
	}
}

// Lease es cuánto puede durar un checkout como máximo; pasado ese tiempo
// se considera abandonado
func (s *Service) Lease() time.Duration {
	return s.delay + leaseGrace
}

// Validate retorna un *ValidationError con los campos vacíos, o nil
func (s *Service) Validate(form Form) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{
		Fields:  fields,
		Message: "Please fill in all required fields to complete your order.",
	}
}

// Place valida, simula el pago y registra el pedido.
// No modifica el carrito: el llamador descuenta las líneas pedidas solo si Place tiene éxito.
func (s *Service) Place(ctx context.Context, req Request) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if err := s.Validate(req.Form); err != nil {
		return models.Order{}, err
	}

	// pago simulado
	if err := latency.Wait(ctx, s.delay); err != nil {
		return models.Order{}, err
	}

	var subtotal int64
	for _, item := range req.Items {
		subtotal += item.Subtotal()
	}

	order := models.Order{
		ID:        uuid.NewString(),
		Number:    fmt.Sprintf("ORD-%04d", rand.Intn(10000)),
		SessionID: req.SessionID,
		UserID:    req.UserID,
		Items:     req.Items,
		Status:    models.OrderProcessing,
		Summary:   Summarize(subtotal),
		ShippingAddress: models.ShippingAddress{
			FullName:      req.Form.FullName,
			Email:         req.Form.Email,
			StreetAddress: req.Form.Address,
			City:          req.Form.City,
			State:         req.Form.State,
			PostalCode:    req.Form.ZipCode,
		},
		CardLast4: lastFour(req.Form.CardNumber),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("save order: %w", err)
	}

	// el pedido ya está guardado; un fallo del broker no lo revierte
	if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.Error("could not publish order event", zap.String("order_id", order.ID), zap.Error(err))
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("number", order.Number),
		zap.Int("lines", len(order.Items)))
	return order, nil
}

// lastFour retorna los últimos cuatro dígitos ASCII del número de tarjeta
func lastFour(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
