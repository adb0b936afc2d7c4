package handlers

import "github.com/gofiber/fiber/v2"

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Invoice Maker</title>
</head>
<body>
    <h1>Invoice Maker API</h1>
    <p>Multi-tenant invoicing backend. See the route table in the README.</p>
</body>
</html>`

// Home serves the landing page.
func Home(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(homePage)
}
