package handlers

import (
	"stockroom/internal/middleware"
	"stockroom/internal/services"
	"stockroom/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	base
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, v *validation.Validator, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		base:        newBase(v, logger),
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/login", h.HandleLogin)
	router.Post("/logout", auth, h.HandleLogout)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" message:"Invalid email format"`
	Password string `json:"password" validate:"required" message:"Password must be provided"`
}

// HandleLogin checks credentials and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := h.bind(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.LoginUser(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(Envelope{
		Success: true,
		Message: "login successful",
		Data:    user,
		Token:   token,
	})
}

// HandleLogout revokes the token used for this request.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.UserContext(), middleware.CurrentClaims(c)); err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "logout successful", nil)
}
