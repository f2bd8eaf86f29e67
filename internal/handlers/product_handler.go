package handlers

import (
	"stockroom/internal/services"
	"stockroom/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	base
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, v *validation.Validator, logger logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{
		base:    newBase(v, logger),
		service: service,
	}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/products", auth, h.HandleGetProducts)
	router.Get("/product/:id", auth, h.HandleGetProduct)
	router.Post("/product", auth, h.HandleCreateProduct)
	router.Put("/product/update/:id", auth, h.HandleUpdateProduct)
	router.Delete("/product/delete/:id", auth, h.HandleDeleteProduct)
}

// ProductRequest is the body of product create and update requests.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required" message:"Product name must be provided"`
	Price       *float64 `json:"price" validate:"required,gte=0" message:"Product price must be provided and not negative"`
	Description string   `json:"description" validate:"required" message:"Product description must be provided"`
	ImageURL    string   `json:"imageUrl" validate:"required" message:"Product imageUrl must be provided"`
}

func (r ProductRequest) input() services.ProductInput {
	return services.ProductInput{
		Name:        r.Name,
		Price:       decimal.NewFromFloat(*r.Price),
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// HandleGetProducts lists products, optionally filtered by name.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	page := pageRequest(c)
	products, total, err := h.service.ListProducts(c.UserContext(), page)
	if err != nil {
		return h.handleError(c, err)
	}
	return okPage(c, "Products fetched successfully", products, page, total)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "Product fetched successfully", product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := h.bind(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	product, err := h.service.CreateProduct(c.UserContext(), req.input())
	if err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "Product created", product)
}

// HandleUpdateProduct replaces an existing product's fields.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := h.bind(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	product, err := h.service.UpdateProduct(c.UserContext(), c.Params("id"), req.input())
	if err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "Product update successful", product)
}

// HandleDeleteProduct deletes a product. It succeeds whether or not the product existed.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return h.handleError(c, err)
	}
	return ok(c, "Product deleted!", nil)
}
