package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/middleware"
	"github.com/example/invoicemaker/internal/models"
	"github.com/example/invoicemaker/internal/store"
)

// ProductHandler manages product registration for sellers.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// RegisterProducts registers a batch of products for the authenticated
// seller and returns the complete owned set.
func (h *ProductHandler) RegisterProducts(c *fiber.Ctx) error {
	seller, ok := middleware.CurrentSeller(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
	}

	var inputs []models.ProductInput
	if err := c.BodyParser(&inputs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	for _, in := range inputs {
		if in.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "product name is required")
		}
	}

	products, err := store.RegisterProducts(h.db, seller.ID, inputs)
	if err != nil {
		if errors.Is(err, store.ErrAllProductsExist) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	public := make([]models.ProductPublic, 0, len(products))
	for _, p := range products {
		public = append(public, p.Public())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    public,
	})
}
