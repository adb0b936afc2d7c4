package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/models"
)

// Invoice lookup and mutation failures.
var (
	ErrNoInvoices      = errors.New("no invoices found")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrNotInvoiceOwner = errors.New("you do not have permission to update this invoice")
)

// CreateInvoice persists an invoice and its nested line items in a single
// write. The creation timestamp is server-assigned.
func CreateInvoice(db *gorm.DB, sellerID uuid.UUID, input models.InvoiceInput) (*models.Invoice, error) {
	invoice := models.Invoice{
		SellerID:            sellerID,
		CustomerName:        input.CustomerName,
		CustomerPhoneNumber: input.CustomerPhoneNumber,
		CustomerEmail:       input.CustomerEmail,
		CustomerAddress:     input.CustomerAddress,
		Status:              input.Status,
		PaymentMode:         input.PaymentMode,
		TotalPrice:          input.TotalPrice,
	}

	if invoice.Status == "" {
		invoice.Status = models.DefaultInvoiceStatus
	}
	if invoice.PaymentMode == "" {
		invoice.PaymentMode = models.DefaultPaymentMode
	}

	for _, item := range input.Items {
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		})
	}

	if err := db.Create(&invoice).Error; err != nil {
		return nil, err
	}

	return &invoice, nil
}

// SellerInvoices returns a page of the seller's invoices, newest first.
// An empty page fails with ErrNoInvoices rather than succeeding empty.
func SellerInvoices(db *gorm.DB, sellerID uuid.UUID, offset, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := db.Preload("Items").
		Where("seller_id = ?", sellerID).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	if len(invoices) == 0 {
		return nil, ErrNoInvoices
	}

	return invoices, nil
}

// UpdateInvoice applies the fields present in the patch to the invoice.
// Only the owning seller may update it.
func UpdateInvoice(db *gorm.DB, sellerID uuid.UUID, patch models.InvoicePatch) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := db.First(&invoice, "id = ?", patch.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if invoice.SellerID != sellerID {
		return nil, ErrNotInvoiceOwner
	}

	updates := patch.Fields()
	if len(updates) > 0 {
		if err := db.Model(&invoice).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return InvoiceByID(db, invoice.ID)
}

// InvoiceByID returns the invoice with its items, or nil when absent.
// There is deliberately no ownership check on this path.
func InvoiceByID(db *gorm.DB, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := db.Preload("Items").First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

// DeleteInvoice removes an invoice and its line items. Not exposed over
// HTTP; kept for parity with the persistence layer's full surface.
func DeleteInvoice(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Invoice{}, "id = ?", id).Error
	})
}
