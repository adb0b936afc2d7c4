package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/config"
	"github.com/example/invoicemaker/internal/middleware"
	"github.com/example/invoicemaker/internal/models"
	"github.com/example/invoicemaker/internal/store"
	"github.com/example/invoicemaker/internal/utils"
)

// AuthHandler bundles dependencies for signup and login endpoints.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Signup creates a new seller account.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input models.SellerInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := input.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	seller, err := store.CreateSeller(h.db, input)
	if err != nil {
		if errors.Is(err, store.ErrPhoneTaken) || errors.Is(err, store.ErrEmailTaken) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    seller.Public(),
	})
}

type loginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// Login exchanges phone-or-email + password for a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	seller, err := store.Authenticate(h.db, req.PhoneNumber, req.Email, req.Password)
	if err != nil {
		return err
	}
	if seller == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "incorrect phone number, email or password")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, h.cfg.JWTAlgorithm, seller.ID, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me returns the authenticated seller's profile with its products.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	seller, ok := middleware.CurrentSeller(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
	}

	products, err := store.ProductsBySeller(h.db, seller.ID)
	if err != nil {
		return err
	}
	seller.Products = products

	return c.JSON(fiber.Map{
		"success": true,
		"data":    seller.Public(),
	})
}
