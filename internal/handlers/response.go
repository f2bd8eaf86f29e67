package handlers

import (
	"strconv"

	"stockroom/internal/models"
	"stockroom/internal/services"
	"stockroom/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Pagination is added to list responses.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	PerPage      int   `json:"perPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

// Envelope is the body of every response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Token   string      `json:"token,omitempty"`
	*Pagination
}

// base carries what every handler needs to decode requests and write responses.
type base struct {
	validate *validation.Validator
	logger   logrus.FieldLogger
}

func newBase(v *validation.Validator, logger logrus.FieldLogger) base {
	return base{validate: v, logger: logger}
}

// bind parses the JSON body into req and validates it. The returned error
// message is safe to show to clients.
func (b base) bind(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return err
	}
	return b.validate.Struct(req)
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Envelope{Success: true, Message: message, Data: data})
}

func okPage(c *fiber.Ctx, message string, data interface{}, page models.PageRequest, total int64) error {
	return c.JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Pagination: &Pagination{
			CurrentPage:  page.Page,
			PerPage:      page.PerPage,
			TotalPages:   page.TotalPages(total),
			TotalResults: total,
		},
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Message: message})
}

// handleError maps a service error onto its status code. Unclassified errors are
// reported as 400 with the underlying message.
func (b base) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrStockNotInProduct),
		errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrWrongPassword):
		return fail(c, fiber.StatusMethodNotAllowed, err.Error())
	case errors.Is(err, services.ErrEmailExists),
		errors.Is(err, services.ErrProductExists),
		errors.Is(err, services.ErrInvalidQuantity):
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	b.logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Warn("request failed")
	return fail(c, fiber.StatusBadRequest, errors.Cause(err).Error())
}

// pageRequest reads page, perPage and name from the query string.
func pageRequest(c *fiber.Ctx) models.PageRequest {
	return models.NewPageRequest(
		c.QueryInt("page", models.DefaultPage),
		c.QueryInt("perPage", models.DefaultPerPage),
		c.Query("name"),
	)
}

// optionalIntQuery parses an optional integer query parameter.
func optionalIntQuery(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Errorf("%s must be an integer", key)
	}
	return &n, nil
}
