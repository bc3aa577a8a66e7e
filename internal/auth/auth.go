// Package auth implementa una autenticación simulada: cualquier combinación
// de campos no vacíos es válida y devuelve el usuario de demostración.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"carteasy/internal/latency"
	"carteasy/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("please fill in all required fields")
)

// DemoUser es el usuario que retorna cualquier login exitoso
var DemoUser = models.User{
	ID:      "1",
	Name:    "Demo User",
	Email:   "demo@carteasy.com",
	IsAdmin: false,
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Service struct {
	delay    time.Duration
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(delay time.Duration, logger *zap.Logger) *Service {
	return &Service{
		delay:    delay,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login espera la demora simulada y valida que ambos campos tengan valor
func (s *Service) Login(ctx context.Context, req LoginRequest) (models.User, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return models.User{}, err
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Info("login failed", zap.String("email", req.Email))
		return models.User{}, ErrInvalidCredentials
	}

	s.logger.Info("login succeeded", zap.String("email", req.Email))
	return DemoUser, nil
}

// Signup crea un usuario a partir del usuario de demostración
func (s *Service) Signup(ctx context.Context, req SignupRequest) (models.User, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return models.User{}, err
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Info("signup failed", zap.String("email", req.Email))
		return models.User{}, ErrMissingFields
	}

	user := DemoUser
	user.Name = req.Name
	user.Email = req.Email

	s.logger.Info("account created", zap.String("email", req.Email))
	return user, nil
}
