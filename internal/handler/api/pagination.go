package api

import (
	"strconv"

	"printcanvas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// parsePage reads 1-based ?page and ?limit query params; out-of-range values
// are clamped by queries.Page.Normalize.
func parsePage(c *gin.Context) queries.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(queries.DefaultPageSize)))
	return queries.Page{Number: page, Size: limit}.Normalize()
}

// hasMore reports whether rows beyond this page exist.
func hasMore(page queries.Page, returned int, total int64) bool {
	return int64((page.Number-1)*page.Size+returned) < total
}
