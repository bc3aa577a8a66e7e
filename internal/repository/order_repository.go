package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"carteasy/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository guarda los pedidos confirmados
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) error
	FindByID(ctx context.Context, id string) (models.Order, error)
}

// MemoryOrderRepository guarda los pedidos en un mapa protegido por RWMutex
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return nil
}

func (r *MemoryOrderRepository) FindByID(_ context.Context, id string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// orderDocument es la forma persistida del pedido; los importes van como Decimal128
type orderDocument struct {
	ID              string                 `bson:"_id"`
	Number          string                 `bson:"number"`
	SessionID       string                 `bson:"session_id"`
	UserID          string                 `bson:"user_id,omitempty"`
	Items           []models.CartItem      `bson:"items"`
	Status          models.OrderStatus     `bson:"status"`
	Subtotal        primitive.Decimal128   `bson:"subtotal"`
	Shipping        primitive.Decimal128   `bson:"shipping"`
	Tax             primitive.Decimal128   `bson:"tax"`
	Total           primitive.Decimal128   `bson:"total"`
	ShippingAddress models.ShippingAddress `bson:"shipping_address"`
	CardLast4       string                 `bson:"card_last4"`
	CreatedAt       time.Time              `bson:"created_at"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(d.String())
}

func newOrderDocument(order models.Order) (orderDocument, error) {
	doc := orderDocument{
		ID:              order.ID,
		Number:          order.Number,
		SessionID:       order.SessionID,
		UserID:          order.UserID,
		Items:           order.Items,
		Status:          order.Status,
		ShippingAddress: order.ShippingAddress,
		CardLast4:       order.CardLast4,
		CreatedAt:       order.CreatedAt,
	}

	amounts := []struct {
		src decimal.Decimal
		dst *primitive.Decimal128
	}{
		{order.Summary.Subtotal, &doc.Subtotal},
		{order.Summary.Shipping, &doc.Shipping},
		{order.Summary.Tax, &doc.Tax},
		{order.Summary.Total, &doc.Total},
	}
	for _, a := range amounts {
		v, err := toDecimal128(a.src)
		if err != nil {
			return orderDocument{}, err
		}
		*a.dst = v
	}
	return doc, nil
}

func (d orderDocument) toOrder() (models.Order, error) {
	order := models.Order{
		ID:              d.ID,
		Number:          d.Number,
		SessionID:       d.SessionID,
		UserID:          d.UserID,
		Items:           d.Items,
		Status:          d.Status,
		ShippingAddress: d.ShippingAddress,
		CardLast4:       d.CardLast4,
		CreatedAt:       d.CreatedAt,
	}

	amounts := []struct {
		src primitive.Decimal128
		dst *decimal.Decimal
	}{
		{d.Subtotal, &order.Summary.Subtotal},
		{d.Shipping, &order.Summary.Shipping},
		{d.Tax, &order.Summary.Tax},
		{d.Total, &order.Summary.Total},
	}
	for _, a := range amounts {
		v, err := fromDecimal128(a.src)
		if err != nil {
			return models.Order{}, err
		}
		*a.dst = v
	}
	return order, nil
}

// MongoOrderRepository persiste pedidos en MongoDB
type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(collection *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{collection: collection}
}

// Create inserta un nuevo pedido
func (r *MongoOrderRepository) Create(ctx context.Context, order models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc, err := newOrderDocument(order)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.ID, err)
	}

	_, err = r.collection.InsertOne(ctx, doc)
	return err
}

// FindByID obtiene un pedido por ID
func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc orderDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	return doc.toOrder()
}
