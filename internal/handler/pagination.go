package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paginationParams reads the 1-based page and the limit query params, falling
// back to sane values on garbage input.
func paginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page = 1
	limit = defaultLimit

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	return page, limit, (page - 1) * limit
}

func paginationMeta(page, limit int, total int64) gin.H {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"pages": pages,
	}
}
