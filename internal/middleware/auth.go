package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/config"
	"github.com/example/invoicemaker/internal/models"
	"github.com/example/invoicemaker/internal/store"
	"github.com/example/invoicemaker/internal/utils"
)

const sellerContextKey = "currentSeller"

// AuthMiddleware validates the bearer token and loads the authenticated
// seller into the request context.
//
// A bad token is a 401; a valid token whose subject no longer maps to a
// stored seller is a 404. The distinction is intentional and load-bearing
// for clients.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
		}

		sellerID, err := utils.ParseToken(cfg.JWTSecret, cfg.JWTAlgorithm, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
		}

		seller, err := store.SellerByID(db, sellerID)
		if err != nil {
			return err
		}
		if seller == nil {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}

		c.Locals(sellerContextKey, seller)
		return c.Next()
	}
}

// CurrentSeller extracts the authenticated seller from the request context.
func CurrentSeller(c *fiber.Ctx) (*models.Seller, bool) {
	value := c.Locals(sellerContextKey)
	if value == nil {
		return nil, false
	}

	if seller, ok := value.(*models.Seller); ok {
		return seller, true
	}

	return nil, false
}
