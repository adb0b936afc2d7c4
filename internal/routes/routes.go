package routes

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/example/invoicemaker/internal/config"
	"github.com/example/invoicemaker/internal/handlers"
	"github.com/example/invoicemaker/internal/middleware"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	accountHandler := handlers.NewAccountHandler(db)
	productHandler := handlers.NewProductHandler(db)
	invoiceHandler := handlers.NewInvoiceHandler(db)

	app.Get("/", handlers.Home)

	// Credential endpoints sit behind a shared rate limiter.
	credentialLimit := middleware.RateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	app.Post("/signup", credentialLimit, authHandler.Signup)
	app.Post("/login/access-token", credentialLimit, authHandler.Login)

	// Public invoice lookup for the lint-to-invoice integration.
	app.Get("/invoice", invoiceHandler.GetInvoice)

	auth := middleware.AuthMiddleware(db, cfg)
	app.Get("/login/me", auth, authHandler.Me)

	user := app.Group("/user", auth)
	user.Post("/newproduct", productHandler.RegisterProducts)
	user.Post("/createInvoice", invoiceHandler.CreateInvoice)
	user.Get("/get_invoices", invoiceHandler.ListInvoices)
	user.Patch("/update_invoice", invoiceHandler.UpdateInvoice)
	user.Post("/new_password", accountHandler.NewPassword)
	user.Patch("/update_info", accountHandler.UpdateInfo)
}
