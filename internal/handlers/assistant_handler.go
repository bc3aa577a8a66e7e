package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carteasy/internal/assistant"
	"carteasy/internal/session"
)

type AssistantHandler struct {
	assistant *assistant.Service
	sessions  session.Store
}

func NewAssistantHandler(svc *assistant.Service, sessions session.Store) *AssistantHandler {
	return &AssistantHandler{assistant: svc, sessions: sessions}
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// GET /v1/assistant/messages
func (h *AssistantHandler) Messages(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, sess.Assistant)
}

// POST /v1/assistant/messages
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sid := currentSession(c).ID
	updater := func(ctx context.Context, fn func(*assistant.Conversation) error) error {
		_, err := h.sessions.Update(ctx, sid, func(s *session.Session) error {
			return fn(&s.Assistant)
		})
		return err
	}

	reply, ok, err := h.assistant.SendMessage(c.Request.Context(), req.Content, updater)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrBusy), errors.Is(err, assistant.ErrReset):
			respondError(c, http.StatusConflict, err.Error())
		case errors.Is(err, session.ErrNotFound):
			respondError(c, http.StatusNotFound, "session not found")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respondError(c, http.StatusRequestTimeout, "request canceled")
		default:
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to send message")
		}
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reply": reply})
}

// DELETE /v1/assistant/messages
func (h *AssistantHandler) ClearMessages(c *gin.Context) {
	sess := currentSession(c)

	updated, err := h.sessions.Update(c.Request.Context(), sess.ID, func(s *session.Session) error {
		return s.Assistant.Clear(time.Now().UTC())
	})
	if err != nil {
		if errors.Is(err, assistant.ErrBusy) {
			respondError(c, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, session.ErrNotFound) {
			respondError(c, http.StatusNotFound, "session not found")
			return
		}
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to clear messages")
		return
	}

	c.JSON(http.StatusOK, updated.Assistant)
}
