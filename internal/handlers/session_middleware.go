package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carteasy/internal/session"
)

const (
	SessionHeader = "X-Session-ID"
	sessionKey    = "session"
)

// RequireSession carga la sesión indicada en X-Session-ID
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			respondError(c, http.StatusUnauthorized, "missing "+SessionHeader+" header")
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				respondError(c, http.StatusNotFound, "session not found")
				return
			}
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to load session")
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// SessionHandler crea sesiones de comprador
type SessionHandler struct {
	store session.Store
}

func NewSessionHandler(store session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// POST /v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	sess, err := h.store.Create(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	c.Header(SessionHeader, sess.ID)
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sess.ID,
		"createdAt": sess.CreatedAt,
	})
}

// DELETE /v1/sessions
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	sess := currentSession(c)
	if err := h.store.Delete(c.Request.Context(), sess.ID); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to delete session")
		return
	}
	c.Status(http.StatusNoContent)
}
