package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
	DefaultPage     = 1 // pages are 1-based
)

// ClampPaging normalizes a 1-based page number and page size into the
// supported ranges and computes the SQL offset. Sizes outside [1,MaxPageSize]
// fall back to the nearest bound, invalid pages fall back to page 1.
func ClampPaging(page, limit int) (clampedPage, clampedLimit, offset int) {
	if limit < 1 {
		clampedLimit = 1
	} else if limit > MaxPageSize {
		clampedLimit = MaxPageSize
	} else {
		clampedLimit = limit
	}

	clampedPage = page
	if clampedPage < DefaultPage {
		clampedPage = DefaultPage
	}

	offset = (clampedPage - 1) * clampedLimit
	return clampedPage, clampedLimit, offset
}

// TotalPages computes ceil(total/limit); 0 when there are no items.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// ParsePagingParams extracts page and limit query parameters from the request.
// Missing or malformed values yield the defaults.
func ParsePagingParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if err != nil {
		limit = DefaultPageSize
	}

	return page, limit
}
