package models

import (
	"fmt"
	"regexp"
)

// E.164-like: optional plus then digits. Leading zeros are accepted for
// locally formatted numbers. Length is bounded separately; the whole value,
// plus sign included, must fit the 15-character phone column.
var phonePattern = regexp.MustCompile(`^\+?[0-9]+$`)

// passwordPattern is the allowed password alphabet; at least one such
// character must be present.
var passwordPattern = regexp.MustCompile(`[A-Za-z0-9@#$%^&+=]`)

// Seller is the stored tenant record. Each seller owns its products and
// invoices; rows are never deleted.
type Seller struct {
	BaseModel
	Name             string    `json:"name"`
	Email            string    `gorm:"index" json:"email"`
	PhoneNumber      string    `gorm:"uniqueIndex;size:15" json:"phone_number"`
	PasswordHash     string    `json:"-"`
	StoreName        string    `json:"store_name"`
	StoreDescription string    `json:"store_description"`
	StoreAddress     string    `json:"store_address"`
	InstaLink        string    `json:"insta_link"`
	Products         []Product `json:"products,omitempty"`
	Invoices         []Invoice `json:"invoices,omitempty"`
}

// SellerInput is the signup payload. Password arrives in plaintext and is
// hashed before it ever reaches the store.
type SellerInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	Password         string `json:"password"`
	StoreName        string `json:"store_name"`
	StoreDescription string `json:"store_description"`
	StoreAddress     string `json:"store_address"`
	InstaLink        string `json:"insta_link"`
}

// Validate checks the shape constraints on signup input.
func (in SellerInput) Validate() error {
	if len(in.PhoneNumber) < 10 || len(in.PhoneNumber) > 15 {
		return fmt.Errorf("phone_number must be 10-15 characters")
	}
	if !phonePattern.MatchString(in.PhoneNumber) {
		return fmt.Errorf("phone_number must contain only digits, optionally prefixed with +")
	}
	if len(in.Password) < 8 || len(in.Password) > 30 {
		return fmt.Errorf("password must be 8-30 characters")
	}
	if !passwordPattern.MatchString(in.Password) {
		return fmt.Errorf("password must contain letters, digits or @#$%%^&+=")
	}
	return nil
}

// SellerPublic is the external profile projection; it never carries
// credential material.
type SellerPublic struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	PhoneNumber      string          `json:"phone_number"`
	StoreName        string          `json:"store_name"`
	StoreDescription string          `json:"store_description"`
	StoreAddress     string          `json:"store_address"`
	InstaLink        string          `json:"insta_link"`
	Products         []ProductPublic `json:"products"`
}

// Public maps the stored seller onto its external projection.
func (s *Seller) Public() SellerPublic {
	products := make([]ProductPublic, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, p.Public())
	}

	return SellerPublic{
		ID:               s.ID.String(),
		Name:             s.Name,
		Email:            s.Email,
		PhoneNumber:      s.PhoneNumber,
		StoreName:        s.StoreName,
		StoreDescription: s.StoreDescription,
		StoreAddress:     s.StoreAddress,
		InstaLink:        s.InstaLink,
		Products:         products,
	}
}

// SellerPatch carries a partial profile update; only non-nil fields are
// applied.
type SellerPatch struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	PhoneNumber      *string `json:"phone_number"`
	StoreName        *string `json:"store_name"`
	StoreDescription *string `json:"store_description"`
	StoreAddress     *string `json:"store_address"`
	InstaLink        *string `json:"insta_link"`
}

// Fields returns the column updates for the fields present in the patch.
func (p SellerPatch) Fields() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.PhoneNumber != nil {
		updates["phone_number"] = *p.PhoneNumber
	}
	if p.StoreName != nil {
		updates["store_name"] = *p.StoreName
	}
	if p.StoreDescription != nil {
		updates["store_description"] = *p.StoreDescription
	}
	if p.StoreAddress != nil {
		updates["store_address"] = *p.StoreAddress
	}
	if p.InstaLink != nil {
		updates["insta_link"] = *p.InstaLink
	}
	return updates
}
