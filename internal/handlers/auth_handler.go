package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carteasy/internal/auth"
	"carteasy/internal/models"
	"carteasy/internal/session"
)

type AuthHandler struct {
	auth     *auth.Service
	sessions session.Store
}

func NewAuthHandler(svc *auth.Service, sessions session.Store) *AuthHandler {
	return &AuthHandler{auth: svc, sessions: sessions}
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Login failed")
		return
	}

	h.setUser(c, &user, "Welcome back, "+user.Name+"!")
}

// POST /v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Signup failed")
		return
	}

	h.setUser(c, &user, "Welcome to CartEasy, "+user.Name+"!")
}

// POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setUser(c, nil, "You have been logged out of your account")
}

// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": sess.IsAuthenticated(),
		"user":            sess.User,
	})
}

func (h *AuthHandler) fail(c *gin.Context, err error, title string) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: title, Message: "Invalid email or password"})
	case errors.Is(err, auth.ErrMissingFields):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: title, Message: "Please fill in all required fields"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusRequestTimeout, "request canceled")
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "authentication failed")
	}
}

func (h *AuthHandler) setUser(c *gin.Context, user *models.User, message string) {
	sess := currentSession(c)

	updated, err := h.sessions.Update(c.Request.Context(), sess.ID, func(s *session.Session) error {
		s.User = user
		return nil
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			respondError(c, http.StatusNotFound, "session not found")
			return
		}
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to update session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         message,
		"isAuthenticated": updated.IsAuthenticated(),
		"user":            updated.User,
	})
}
