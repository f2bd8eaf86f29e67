package handlers

import (
	"stockroom/internal/middleware"
	"stockroom/internal/services"
	"stockroom/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	base
	authService *services.AuthService
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService, v *validation.Validator, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{
		base:        newBase(v, logger),
		authService: authService,
		userService: userService,
	}
}

// RegisterRoutes registers the user routes. Only registration is public.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/users", auth, h.HandleGetUsers)
	router.Get("/user/me", auth, h.HandleGetMe)
	router.Get("/user/:id", auth, h.HandleGetUser)
	router.Post("/user", h.HandleRegister)
	router.Put("/user/update/:id", auth, h.HandleUpdateUser)
	router.Put("/user/password", auth, h.HandleChangePassword)
	router.Delete("/user/delete/:id", auth, h.HandleDeleteUser)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=2" message:"First name must be up to 2 characters"`
	LastName        string `json:"lastName" validate:"required,min=2" message:"Last name must be up to 2 characters"`
	Email           string `json:"email" validate:"required,email" message:"Invalid email format"`
	Password        string `json:"password" validate:"password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password" message:"Passwords do not match"`
}

// UpdateUserRequest represents the request body for updating a user.
type UpdateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2" message:"First name must be up to 2 characters"`
	LastName  string `json:"lastName" validate:"required,min=2" message:"Last name must be up to 2 characters"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required" message:"Your old password is required"`
	NewPassword     string `json:"newPassword" validate:"password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword" message:"Passwords do not match"`
}

// HandleGetUsers lists users, optionally filtered by full name.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	page := pageRequest(c)
	users, total, err := h.userService.ListUsers(c.UserContext(), page)
	if err != nil {
		return h.handleError(c, err)
	}
	return okPage(c, "Users fetched successfully", users, page, total)
}

// HandleGetMe returns the authenticated user.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	return ok(c, "User fetched successfully", middleware.CurrentUser(c))
}

// HandleGetUser retrieves a single user by ID.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "User fetched successfully", user)
}

// HandleRegister creates a new account.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := h.bind(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterUser(c.UserContext(), services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "User created", user)
}

// HandleUpdateUser replaces a user's names.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := h.bind(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateUser(c.UserContext(), c.Params("id"), req.FirstName, req.LastName)
	if err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "user update successful", user)
}

// HandleChangePassword changes the authenticated user's password.
func (h *UserHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := h.bind(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	if err := h.authService.ChangePassword(c.UserContext(), user, req.OldPassword, req.NewPassword); err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "Password changed successfully", user)
}

// HandleDeleteUser deletes a user. It succeeds whether or not the user existed.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "user deleted!", nil)
}
