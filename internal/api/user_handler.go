package api

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers lists every user with their address --> GET /users/getUsers
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userService.GetUsers(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	if users == nil {
		users = []*entity.UserWithAddress{}
	}
	return c.JSON(200, users)
}

// EditUser applies an admin edit --> PUT /users/editUser/:id
func (h *UserHandler) EditUser(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	req := entity.EditUserRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.userService.EditUser(c.Request().Context(), userID, &req); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"error": "User details are incomplete."})
		}
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(404, map[string]string{"error": "User not found."})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(200, map[string]string{"message": "User updated successfully"})
}

// DeleteUser removes a user --> DELETE /users/deleteUser/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.userService.DeleteUser(c.Request().Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(404, map[string]string{"error": "User not found."})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(200, map[string]string{"message": "User deleted successfully"})
}

// GetProfile returns a user's profile with address --> GET /profile/:userId
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	profile, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(404, map[string]string{"message": "User not found."})
		}
		return c.JSON(500, map[string]string{"message": "Error fetching profile."})
	}

	return c.JSON(200, profile)
}

// UpdateProfile edits the authenticated user's profile --> PUT /profile
// The user id comes from the bearer token, not the body.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(401, map[string]string{"message": "Invalid or expired token."})
	}
	claims, ok := token.Claims.(*service.JwtCustomClaims)
	if !ok {
		return c.JSON(401, map[string]string{"message": "Invalid or expired token."})
	}

	req := entity.UpdateProfileRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}

	if err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, &req); err != nil {
		return c.JSON(500, map[string]string{"message": "Error updating profile."})
	}

	return c.JSON(200, map[string]string{"message": "Profile updated successfully."})
}

// AddSupplierAddress stores a supplier address --> POST /supplieraddress
func (h *UserHandler) AddSupplierAddress(c echo.Context) error {
	addr := entity.Address{}
	if err := c.Bind(&addr); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	id, err := h.userService.AddSupplierAddress(c.Request().Context(), &addr)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(201, map[string]interface{}{
		"message":   "Address added successfully",
		"addressId": id,
	})
}
