package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
)

const (
	MaxPageSize = 100
	DefaultPage = 1 // pages are 1-based
)

// CalculateSkipLimit converts a 1-based page number into the skip/limit pair
// used by the document store.
func CalculateSkipLimit(page, limit int) (skip int64, capped int) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return int64((page - 1) * limit), limit
}

// NewPaginationInfo creates the standard pagination block for list responses.
// page should be the 1-based page number.
func NewPaginationInfo(totalCount int64, page, limit int) *dto.PaginationInfo {
	if limit <= 0 {
		limit = 1
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))

	return &dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     int64(page*limit) < totalCount,
		HasPrev:     page > 1,
	}
}

// ParsePaginationParams extracts page and limit query parameters, falling
// back to 1/defaultLimit on anything unparsable or out of range.
func ParsePaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = defaultLimit
	}

	return page, limit
}
