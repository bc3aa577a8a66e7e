// Package assistant implementa el asistente de compras simulado "DevAI":
// una demora fija seguida de una búsqueda de palabras clave.
package assistant

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"carteasy/internal/latency"
	"carteasy/internal/models"
)

var (
	// ErrBusy se retorna cuando ya hay una respuesta en proceso
	ErrBusy = errors.New("assistant is still processing the previous message")
	// ErrReset se retorna si el historial se reinició mientras se generaba la respuesta
	ErrReset = errors.New("conversation was cleared before the reply was ready")
)

// processingGrace extiende la marca de procesamiento más allá de la demora;
// si el proceso muere, la marca vence sola
const processingGrace = 30 * time.Second

// Conversation es el historial de una sesión
type Conversation struct {
	Messages        []models.AIMessage `json:"messages"`
	Processing      bool               `json:"processing"`
	ProcessingUntil time.Time          `json:"processingUntil,omitzero"`
}

// NewConversation crea un historial con el saludo inicial
func NewConversation() Conversation {
	return Conversation{Messages: []models.AIMessage{newMessage(models.RoleAssistant, GreetingMessage)}}
}

// Reset reemplaza el historial completo por el saludo
func (c *Conversation) Reset() {
	*c = NewConversation()
}

// Busy indica si hay una respuesta en proceso que no ha vencido
func (c *Conversation) Busy(now time.Time) bool {
	return c.Processing && now.Before(c.ProcessingUntil)
}

// Clear reinicia el historial; falla con ErrBusy si hay una respuesta pendiente
func (c *Conversation) Clear(now time.Time) error {
	if c.Busy(now) {
		return ErrBusy
	}
	c.Reset()
	return nil
}

func (c *Conversation) hasMessage(id string) bool {
	return slices.ContainsFunc(c.Messages, func(m models.AIMessage) bool { return m.ID == id })
}

func (c *Conversation) done() {
	c.Processing = false
	c.ProcessingUntil = time.Time{}
}

func (c *Conversation) append(role models.Role, content string) models.AIMessage {
	msg := newMessage(role, content)
	c.Messages = append(c.Messages, msg)
	return msg
}

func newMessage(role models.Role, content string) models.AIMessage {
	return models.AIMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// Updater aplica fn de forma atómica sobre la conversación almacenada
type Updater func(ctx context.Context, fn func(*Conversation) error) error

type Service struct {
	products []models.Product
	delay    time.Duration
	logger   *zap.Logger
}

func NewService(products []models.Product, delay time.Duration, logger *zap.Logger) *Service {
	return &Service{
		products: products,
		delay:    delay,
		logger:   logger,
	}
}

// SendMessage agrega el mensaje del usuario, espera la demora y agrega la respuesta.
// El texto en blanco se ignora y retorna ok=false.
func (s *Service) SendMessage(ctx context.Context, text string, update Updater) (reply models.AIMessage, ok bool, err error) {
	if strings.TrimSpace(text) == "" {
		return models.AIMessage{}, false, nil
	}

	var question models.AIMessage
	err = update(ctx, func(c *Conversation) error {
		now := time.Now().UTC()
		if c.Busy(now) {
			return ErrBusy
		}
		question = c.append(models.RoleUser, text)
		c.Processing = true
		c.ProcessingUntil = now.Add(s.delay + processingGrace)
		return nil
	})
	if err != nil {
		return models.AIMessage{}, false, err
	}

	if err := latency.Wait(ctx, s.delay); err != nil {
		// la solicitud se canceló: liberar el estado "processing"
		cleanupErr := update(context.WithoutCancel(ctx), func(c *Conversation) error {
			if c.hasMessage(question.ID) {
				c.done()
			}
			return nil
		})
		if cleanupErr != nil {
			s.logger.Warn("could not reset assistant state", zap.Error(cleanupErr))
		}
		return models.AIMessage{}, false, err
	}

	content := Reply(text, s.products)
	err = update(ctx, func(c *Conversation) error {
		// sin la pregunta en el historial la respuesta quedaría huérfana
		if !c.hasMessage(question.ID) {
			return ErrReset
		}
		reply = c.append(models.RoleAssistant, content)
		c.done()
		return nil
	})
	if err != nil {
		return models.AIMessage{}, false, err
	}

	s.logger.Debug("assistant replied", zap.String("message_id", reply.ID))
	return reply, true, nil
}
