package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/middleware"
	"github.com/example/invoicemaker/internal/models"
	"github.com/example/invoicemaker/internal/store"
	"github.com/example/invoicemaker/internal/utils"
)

// AccountHandler manages password and profile mutations for the
// authenticated seller.
type AccountHandler struct {
	db *gorm.DB
}

// NewAccountHandler constructs an AccountHandler.
func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{db: db}
}

type newPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// NewPassword replaces the seller's password after verifying the current one.
func (h *AccountHandler) NewPassword(c *fiber.Ctx) error {
	seller, ok := middleware.CurrentSeller(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
	}

	var req newPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !utils.CheckPassword(seller.PasswordHash, req.CurrentPassword) {
		return fiber.NewError(fiber.StatusBadRequest, "incorrect password")
	}

	if req.CurrentPassword == req.NewPassword {
		return fiber.NewError(fiber.StatusBadRequest, "new password cannot be the same as the current one")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := store.UpdatePassword(h.db, seller, hash); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "password updated successfully",
	})
}

// UpdateInfo applies a partial profile update.
func (h *AccountHandler) UpdateInfo(c *fiber.Ctx) error {
	seller, ok := middleware.CurrentSeller(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
	}

	var patch models.SellerPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := store.UpdateSellerInfo(h.db, seller, patch)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    updated.Public(),
	})
}
