package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AuthenticateUser logs a user in --> POST /loginPage/authenticateUser
func (h *AuthHandler) AuthenticateUser(c echo.Context) error {
	login := entity.LoginRequest{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}

	if login.Email == "" || login.Password == "" {
		return c.JSON(400, map[string]string{"message": "Missing email or password"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), login.Email, login.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(401, map[string]string{"message": "User not found"})
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(401, map[string]string{"message": "Invalid credentials"})
		}
		return c.JSON(500, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(200, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// RegisterUser creates a user with its address and role row --> POST /registerUser
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	req := entity.RegisterRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}

	err := h.authService.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"message": "All fields are required"})
		}
		if errors.Is(err, service.ErrEmailInUse) {
			return c.JSON(400, map[string]string{"message": "Email already in use"})
		}
		return c.JSON(500, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(201, map[string]string{"message": "User registered successfully"})
}
