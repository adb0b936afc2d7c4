package models

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied when an invoice is created without them.
const (
	DefaultInvoiceStatus = "Pending"
	DefaultPaymentMode   = "Cash"
)

// Invoice is a stored customer invoice. Exactly one seller owns it; line
// items live and die with their invoice.
type Invoice struct {
	BaseModel
	SellerID            uuid.UUID     `gorm:"type:uuid;index" json:"seller_id"`
	CustomerName        string        `json:"customer_name"`
	CustomerPhoneNumber string        `json:"customer_phone_number"`
	CustomerEmail       string        `json:"customer_email"`
	CustomerAddress     string        `json:"customer_address"`
	Status              string        `json:"status"`
	PaymentMode         string        `json:"payment_mode"`
	TotalPrice          float64       `json:"total_price"`
	Items               []InvoiceItem `gorm:"constraint:OnDelete:CASCADE" json:"invoiceitems,omitempty"`
}

// InvoiceItem is a quantity/price line within an invoice, optionally tied
// to a catalog product.
type InvoiceItem struct {
	BaseModel
	InvoiceID  uuid.UUID  `gorm:"type:uuid;index" json:"invoice_id"`
	ProductID  *uuid.UUID `gorm:"type:uuid" json:"product_id"`
	Quantity   int        `json:"quantity"`
	TotalPrice float64    `json:"total_price"`
}

// InvoiceItemInput is one nested line item in an invoice creation request.
type InvoiceItemInput struct {
	ProductID  *uuid.UUID `json:"product_id"`
	Quantity   int        `json:"quantity"`
	TotalPrice float64    `json:"total_price"`
}

// InvoiceInput is the invoice creation payload.
type InvoiceInput struct {
	CustomerName        string             `json:"customer_name"`
	CustomerPhoneNumber string             `json:"customer_phone_number"`
	CustomerEmail       string             `json:"customer_email"`
	CustomerAddress     string             `json:"customer_address"`
	Status              string             `json:"status"`
	PaymentMode         string             `json:"payment_mode"`
	TotalPrice          float64            `json:"total_price"`
	Items               []InvoiceItemInput `json:"invoiceitems"`
}

// InvoiceItemPublic is the external line item projection.
type InvoiceItemPublic struct {
	ID         string  `json:"id"`
	ProductID  *string `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// InvoicePublic is the external invoice projection.
type InvoicePublic struct {
	ID                  string              `json:"id"`
	CustomerName        string              `json:"customer_name"`
	CustomerPhoneNumber string              `json:"customer_phone_number"`
	CustomerEmail       string              `json:"customer_email"`
	CustomerAddress     string              `json:"customer_address"`
	Status              string              `json:"status"`
	PaymentMode         string              `json:"payment_mode"`
	TotalPrice          float64             `json:"total_price"`
	CreatedDate         time.Time           `json:"created_date"`
	Items               []InvoiceItemPublic `json:"invoiceitems"`
}

// Public maps the stored invoice onto its external projection.
func (i *Invoice) Public() InvoicePublic {
	items := make([]InvoiceItemPublic, 0, len(i.Items))
	for _, item := range i.Items {
		var productID *string
		if item.ProductID != nil {
			id := item.ProductID.String()
			productID = &id
		}
		items = append(items, InvoiceItemPublic{
			ID:         item.ID.String(),
			ProductID:  productID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		})
	}

	return InvoicePublic{
		ID:                  i.ID.String(),
		CustomerName:        i.CustomerName,
		CustomerPhoneNumber: i.CustomerPhoneNumber,
		CustomerEmail:       i.CustomerEmail,
		CustomerAddress:     i.CustomerAddress,
		Status:              i.Status,
		PaymentMode:         i.PaymentMode,
		TotalPrice:          i.TotalPrice,
		CreatedDate:         i.CreatedAt,
		Items:               items,
	}
}

// InvoicePatch carries a partial invoice update; only non-nil fields are
// applied. Line items are not patchable through this path.
type InvoicePatch struct {
	ID                  uuid.UUID `json:"id"`
	CustomerName        *string   `json:"customer_name"`
	CustomerPhoneNumber *string   `json:"customer_phone_number"`
	CustomerEmail       *string   `json:"customer_email"`
	CustomerAddress     *string   `json:"customer_address"`
	Status              *string   `json:"status"`
	PaymentMode         *string   `json:"payment_mode"`
	TotalPrice          *float64  `json:"total_price"`
}

// Fields returns the column updates for the fields present in the patch.
func (p InvoicePatch) Fields() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.CustomerName != nil {
		updates["customer_name"] = *p.CustomerName
	}
	if p.CustomerPhoneNumber != nil {
		updates["customer_phone_number"] = *p.CustomerPhoneNumber
	}
	if p.CustomerEmail != nil {
		updates["customer_email"] = *p.CustomerEmail
	}
	if p.CustomerAddress != nil {
		updates["customer_address"] = *p.CustomerAddress
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.PaymentMode != nil {
		updates["payment_mode"] = *p.PaymentMode
	}
	if p.TotalPrice != nil {
		updates["total_price"] = *p.TotalPrice
	}
	return updates
}
