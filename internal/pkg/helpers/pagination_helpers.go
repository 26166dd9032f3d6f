package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// StudentPageSize is the fixed page size for the admin student listing
	StudentPageSize = 50
	// DefaultPage is 1-based
	DefaultPage = 1
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset int, limit int) {
	if size <= 0 {
		size = StudentPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	return (page - 1) * size, size
}

// TotalPages returns the page count for a total item count and page size.
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = StudentPageSize
	}
	if totalItems <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// ParsePageParam extracts the 1-based page query parameter from the request.
func ParsePageParam(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}
