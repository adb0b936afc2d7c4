package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/models"
)

// ErrAllProductsExist signals a batch whose every candidate name is already
// owned by the seller.
var ErrAllProductsExist = errors.New("all products already exist for this seller")

// RegisterProducts persists a batch of products for the seller and returns
// the seller's complete product set afterwards.
//
// Duplicate names within the batch collapse to the last occurrence. If the
// seller already owns products, candidates whose name matches an existing
// product (case-sensitive) are dropped; a batch with nothing left fails
// with ErrAllProductsExist.
func RegisterProducts(db *gorm.DB, sellerID uuid.UUID, inputs []models.ProductInput) ([]models.Product, error) {
	byName := map[string]models.ProductInput{}
	order := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if _, seen := byName[in.Name]; !seen {
			order = append(order, in.Name)
		}
		byName[in.Name] = in
	}

	existing, err := ProductsBySeller(db, sellerID)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.ProductInput, 0, len(order))
	if len(existing) > 0 {
		owned := map[string]struct{}{}
		for _, p := range existing {
			owned[p.Name] = struct{}{}
		}
		for _, name := range order {
			if _, taken := owned[name]; !taken {
				candidates = append(candidates, byName[name])
			}
		}
		if len(candidates) == 0 {
			return nil, ErrAllProductsExist
		}
	} else {
		for _, name := range order {
			candidates = append(candidates, byName[name])
		}
	}

	if len(candidates) > 0 {
		products := make([]models.Product, 0, len(candidates))
		for _, in := range candidates {
			products = append(products, models.Product{
				Name:        in.Name,
				Description: in.Description,
				Price:       in.Price,
				SellerID:    sellerID,
			})
		}
		if err := db.Create(&products).Error; err != nil {
			return nil, err
		}
	}

	return ProductsBySeller(db, sellerID)
}

// ProductsBySeller returns every product owned by the seller.
func ProductsBySeller(db *gorm.DB, sellerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := db.Where("seller_id = ?", sellerID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
