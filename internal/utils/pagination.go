package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MaxPageSize caps the number of invoices returned per page.
const MaxPageSize = 10

// Pagination holds offset/limit window parameters.
type Pagination struct {
	Offset int
	Limit  int
}

// ParsePagination reads offset and limit query params. The limit defaults
// to MaxPageSize and is clamped to it.
func ParsePagination(c *fiber.Ctx) Pagination {
	offset := parseInt(c.Query("offset", "0"), 0)
	limit := parseInt(c.Query("limit", strconv.Itoa(MaxPageSize)), MaxPageSize)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	return Pagination{Offset: offset, Limit: limit}
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
