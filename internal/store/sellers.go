package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/models"
	"github.com/example/invoicemaker/internal/utils"
)

// Signup and profile-update conflicts.
var (
	ErrPhoneTaken = errors.New("a seller with this phone number already exists")
	ErrEmailTaken = errors.New("a seller with this email already exists")
)

// CreateSeller registers a new seller. The phone number is checked before
// the email; the password is stored only as a bcrypt hash.
func CreateSeller(db *gorm.DB, input models.SellerInput) (*models.Seller, error) {
	existing, err := SellerByPhone(db, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	if input.Email != "" {
		existing, err = SellerByEmail(db, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	seller := models.Seller{
		Name:             input.Name,
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		PasswordHash:     hash,
		StoreName:        input.StoreName,
		StoreDescription: input.StoreDescription,
		StoreAddress:     input.StoreAddress,
		InstaLink:        input.InstaLink,
	}

	if err := db.Create(&seller).Error; err != nil {
		return nil, err
	}

	return &seller, nil
}

// SellerByPhone returns the seller with the exact phone number, or nil.
func SellerByPhone(db *gorm.DB, phone string) (*models.Seller, error) {
	var seller models.Seller
	if err := db.Where("phone_number = ?", phone).First(&seller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

// SellerByEmail returns the seller with the exact email, or nil.
func SellerByEmail(db *gorm.DB, email string) (*models.Seller, error) {
	var seller models.Seller
	if err := db.Where("email = ?", email).First(&seller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

// SellerByID returns the seller with the given ID, or nil.
func SellerByID(db *gorm.DB, id uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	if err := db.First(&seller, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

// Authenticate resolves a phone-or-email + password pair to a seller. The
// phone number takes precedence when both are supplied. A nil result means
// the credentials did not match; callers get no detail beyond that.
func Authenticate(db *gorm.DB, phone, email, password string) (*models.Seller, error) {
	var (
		seller *models.Seller
		err    error
	)

	switch {
	case phone != "":
		seller, err = SellerByPhone(db, phone)
	case email != "":
		seller, err = SellerByEmail(db, email)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if seller == nil || !utils.CheckPassword(seller.PasswordHash, password) {
		return nil, nil
	}

	return seller, nil
}

// UpdatePassword replaces the seller's password hash in place.
func UpdatePassword(db *gorm.DB, seller *models.Seller, newHash string) error {
	seller.PasswordHash = newHash
	return db.Save(seller).Error
}

// UpdateSellerInfo applies the fields present in the patch. Changing the
// email to one held by a different seller fails with ErrEmailTaken.
func UpdateSellerInfo(db *gorm.DB, seller *models.Seller, patch models.SellerPatch) (*models.Seller, error) {
	if patch.Email != nil && *patch.Email != "" {
		existing, err := SellerByEmail(db, *patch.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != seller.ID {
			return nil, ErrEmailTaken
		}
	}

	updates := patch.Fields()
	if len(updates) > 0 {
		if err := db.Model(seller).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return SellerByID(db, seller.ID)
}
