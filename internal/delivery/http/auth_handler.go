package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tradeledger/internal/apperror"
	"tradeledger/internal/delivery/http/dto"
	"tradeledger/internal/service"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
// POST /auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperror.NewValidation("invalid request payload"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.authService.Signup(ctx, req.Username, req.Password); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SignupResponse{Message: "User created"})
}

// Login handles user authentication
// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperror.NewValidation("invalid request payload"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
