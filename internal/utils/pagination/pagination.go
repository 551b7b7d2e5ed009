package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int64
}

// ParseFromRequest reads page/limit query parameters from the request.
func ParseFromRequest(c *fiber.Ctx) Pagination {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Response creates a standardized pagination response.
func Response(p Pagination, data interface{}) fiber.Map {
	totalPages := p.Total / int64(p.Limit)
	if p.Total%int64(p.Limit) > 0 {
		totalPages++
	}

	return fiber.Map{
		"data": data,
		"meta": fiber.Map{
			"page":      p.Page,
			"limit":     p.Limit,
			"total":     p.Total,
			"totalPage": totalPages,
		},
	}
}
