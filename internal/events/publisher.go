// Package events publica los eventos de pedidos confirmados.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"carteasy/internal/models"
)

// OrderItem es una línea del mensaje de pedido
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderMessage es el payload publicado cuando se confirma un pedido
type OrderMessage struct {
	OrderID   string      `json:"orderId"`
	Number    string      `json:"number"`
	UserID    string      `json:"userId,omitempty"`
	Items     []OrderItem `json:"items"`
	Total     string      `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewOrderMessage arma el mensaje a partir del pedido
func NewOrderMessage(order models.Order) OrderMessage {
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{ProductID: item.Product.ID, Quantity: item.Quantity})
	}
	return OrderMessage{
		OrderID:   order.ID,
		Number:    order.Number,
		UserID:    order.UserID,
		Items:     items,
		Total:     order.Summary.Total.StringFixed(2),
		CreatedAt: order.CreatedAt,
	}
}

// Publisher notifica pedidos confirmados
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, order models.Order) error
	Close() error
}

// LogPublisher solo registra el evento; se usa cuando no hay broker configurado
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishOrderPlaced(_ context.Context, order models.Order) error {
	msg := NewOrderMessage(order)
	p.logger.Info("order placed",
		zap.String("order_id", msg.OrderID),
		zap.String("number", msg.Number),
		zap.Int("lines", len(msg.Items)),
		zap.String("total", msg.Total))
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// AMQPPublisher publica los pedidos en una cola de RabbitMQ
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

// NewAMQPPublisher conecta al broker y declara la cola durable
func NewAMQPPublisher(url, queue string, logger *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	logger.Info("rabbitmq publisher ready", zap.String("queue", q.Name))
	return &AMQPPublisher{conn: conn, channel: ch, queue: q.Name, logger: logger}, nil
}

func (p *AMQPPublisher) PublishOrderPlaced(ctx context.Context, order models.Order) error {
	body, err := json.Marshal(NewOrderMessage(order))
	if err != nil {
		return fmt.Errorf("marshal order message: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    order.ID,
			Timestamp:    order.CreatedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish order %s: %w", order.ID, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.logger.Warn("closing rabbitmq channel", zap.Error(err))
	}
	return p.conn.Close()
}
