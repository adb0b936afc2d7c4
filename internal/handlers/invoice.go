package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/middleware"
	"github.com/example/invoicemaker/internal/models"
	"github.com/example/invoicemaker/internal/store"
	"github.com/example/invoicemaker/internal/utils"
)

// InvoiceHandler manages invoice endpoints.
type InvoiceHandler struct {
	db *gorm.DB
}

// NewInvoiceHandler constructs an InvoiceHandler.
func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

// CreateInvoice creates an invoice with nested line items for the
// authenticated seller.
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	seller, ok := middleware.CurrentSeller(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
	}

	var input models.InvoiceInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	invoice, err := store.CreateInvoice(h.db, seller.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    invoice.Public(),
	})
}

// ListInvoices returns the seller's invoices, newest first. An empty page
// is a 404, not an empty success.
func (h *InvoiceHandler) ListInvoices(c *fiber.Ctx) error {
	seller, ok := middleware.CurrentSeller(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
	}

	pg := utils.ParsePagination(c)
	invoices, err := store.SellerInvoices(h.db, seller.ID, pg.Offset, pg.Limit)
	if err != nil {
		if errors.Is(err, store.ErrNoInvoices) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	public := make([]models.InvoicePublic, 0, len(invoices))
	for i := range invoices {
		public = append(public, invoices[i].Public())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    public,
	})
}

// UpdateInvoice applies a partial update to one of the seller's invoices.
func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	seller, ok := middleware.CurrentSeller(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
	}

	var patch models.InvoicePatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if patch.ID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "invoice id is required")
	}

	invoice, err := store.UpdateInvoice(h.db, seller.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvoiceNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, store.ErrNotInvoiceOwner):
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    invoice.Public(),
	})
}

// GetInvoice looks up an invoice by ID without authentication. Used by the
// external lint-to-invoice integration; there is no ownership check.
func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	invoice, err := store.InvoiceByID(h.db, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    invoice.Public(),
	})
}
