package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 50)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 50, limit)

	offset, limit = CalculateOffsetLimit(3, 50)
	assert.Equal(t, 100, offset)
	assert.Equal(t, 50, limit)

	// Out-of-range inputs fall back to the defaults
	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, StudentPageSize, limit)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 50))
	assert.Equal(t, 1, TotalPages(1, 50))
	assert.Equal(t, 1, TotalPages(50, 50))
	assert.Equal(t, 2, TotalPages(51, 50))
	assert.Equal(t, 3, TotalPages(101, 50))
}
