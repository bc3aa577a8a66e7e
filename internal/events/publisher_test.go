package events

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"carteasy/internal/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:     "order-1",
		Number: "ORD-0042",
		Items: []models.CartItem{
			{Product: models.Product{ID: "1", Price: 24999}, Quantity: 2},
			{Product: models.Product{ID: "8", Price: 9999}, Quantity: 1},
		},
		Summary:   models.OrderSummary{Total: decimal.RequireFromString("70797.82")},
		CreatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewOrderMessage(t *testing.T) {
	msg := NewOrderMessage(sampleOrder())

	assert.Equal(t, "order-1", msg.OrderID)
	assert.Equal(t, "ORD-0042", msg.Number)
	assert.Equal(t, "70797.82", msg.Total)
	require.Len(t, msg.Items, 2)
	assert.Equal(t, OrderItem{ProductID: "1", Quantity: 2}, msg.Items[0])
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	require.NoError(t, p.PublishOrderPlaced(context.Background(), sampleOrder()))
	require.NoError(t, p.Close())

	entries := logs.FilterMessage("order placed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ORD-0042", entries[0].ContextMap()["number"])
}
