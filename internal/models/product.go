package models

import "github.com/google/uuid"

// Product is a stored catalog entry. Products are immutable once created;
// a seller may not own two products with the same name.
type Product struct {
	BaseModel
	Name        string    `gorm:"index" json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	SellerID    uuid.UUID `gorm:"type:uuid;index" json:"seller_id"`
}

// ProductInput is one candidate in a batch registration request.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductPublic is the external catalog projection.
type ProductPublic struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Public maps the stored product onto its external projection.
func (p *Product) Public() ProductPublic {
	return ProductPublic{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}
