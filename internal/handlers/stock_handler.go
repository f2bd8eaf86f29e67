package handlers

import (
	"stockroom/internal/models"
	"stockroom/internal/services"
	"stockroom/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// StockHandler handles HTTP requests for stock batches.
type StockHandler struct {
	base
	service *services.StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(service *services.StockService, v *validation.Validator, logger logrus.FieldLogger) *StockHandler {
	return &StockHandler{
		base:    newBase(v, logger),
		service: service,
	}
}

// RegisterRoutes registers the stock routes.
func (h *StockHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/stocks", auth, h.HandleGetStocks)
	router.Get("/product/stocks/:id", auth, h.HandleGetProductStocks)
	router.Post("/product/stock", auth, h.HandleAddStock)
	router.Delete("/product/stock/delete", auth, h.HandleDeleteStock)
}

// AddStockRequest is the body of an add-stock request.
type AddStockRequest struct {
	Quantity  *int   `json:"quantity" validate:"required,gte=1" message:"Stock quantity must be at least 1"`
	ProductID string `json:"productId" validate:"required" message:"Product id must be provided"`
}

// DeleteStockRequest is the body of a delete-stock request.
type DeleteStockRequest struct {
	ProductID string `json:"productId" validate:"required" message:"Product id must be provided"`
	StockID   string `json:"stockId" validate:"required" message:"Stock id must be provided"`
}

// HandleGetStocks lists all stock batches. The name query filters on batch ID.
func (h *StockHandler) HandleGetStocks(c *fiber.Ctx) error {
	page := pageRequest(c)
	stocks, total, err := h.service.ListStocks(c.UserContext(), page)
	if err != nil {
		return h.handleError(c, err)
	}
	return okPage(c, "Stocks fetched successfully", stocks, page, total)
}

// HandleGetProductStocks lists a product's stocks, optionally bounded by
// minQuantity and maxQuantity.
func (h *StockHandler) HandleGetProductStocks(c *fiber.Ctx) error {
	minQty, err := optionalIntQuery(c, "minQuantity")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	maxQty, err := optionalIntQuery(c, "maxQuantity")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if minQty != nil && maxQty != nil && *minQty > *maxQty {
		return fail(c, fiber.StatusBadRequest, "minQuantity must not be greater than maxQuantity")
	}

	page := pageRequest(c)
	quantity := models.QuantityRange{Min: minQty, Max: maxQty}

	stocks, total, err := h.service.ListProductStocks(c.UserContext(), c.Params("id"), quantity, page)
	if err != nil {
		return h.handleError(c, err)
	}
	return okPage(c, "Stocks fetched successfully", stocks, page, total)
}

// HandleAddStock adds a stock batch to a product and returns the product.
func (h *StockHandler) HandleAddStock(c *fiber.Ctx) error {
	var req AddStockRequest
	if err := h.bind(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	product, err := h.service.AddStock(c.UserContext(), req.ProductID, *req.Quantity)
	if err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "Stock added", product)
}

// HandleDeleteStock removes a stock batch from a product and returns the product.
func (h *StockHandler) HandleDeleteStock(c *fiber.Ctx) error {
	var req DeleteStockRequest
	if err := h.bind(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	product, err := h.service.RemoveStock(c.UserContext(), req.ProductID, req.StockID)
	if err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "Stock removed", product)
}
