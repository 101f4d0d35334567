package handlers

import (
	"errors"

	"cantina/internal/services/catalog"
	"cantina/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	catalogService catalog.Service
}

func NewProductHandler(catalogService catalog.Service) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// ListProducts returns the full catalog. Public: the menu board needs no
// login.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.List()
	if err != nil {
		return utils.InternalError(c, "Failed to fetch products")
	}
	return utils.Success(c, products)
}

// CreateProduct adds a catalog entry, admin only.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var input catalog.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	product, err := h.catalogService.Create(input)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidProduct) {
			return utils.BadRequest(c, "Invalid product data")
		}
		return utils.InternalError(c, "Failed to create product")
	}
	return utils.Created(c, product)
}

// UpdateProduct replaces a catalog entry, admin only.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	var input catalog.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	product, err := h.catalogService.Update(productID, input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, catalog.ErrInvalidProduct):
			return utils.BadRequest(c, "Invalid product data")
		default:
			return utils.InternalError(c, "Failed to update product")
		}
	}
	return utils.Success(c, product)
}

// DeleteProduct removes a catalog entry, admin only.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	if err := h.catalogService.Delete(productID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return utils.NotFound(c, "Product not found")
		}
		return utils.InternalError(c, "Failed to delete product")
	}
	return utils.Success(c, fiber.Map{"success": true})
}

// UploadProductImage stores a base64 data URL as the product image.
func (h *ProductHandler) UploadProductImage(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	var input struct {
		ImageData string `json:"image_data"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.catalogService.SetImage(productID, input.ImageData); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return utils.NotFound(c, "Product not found")
		}
		return utils.InternalError(c, "Failed to upload image")
	}
	return utils.Success(c, fiber.Map{"success": true})
}
