package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateSkipLimit(t *testing.T) {
	skip, limit := CalculateSkipLimit(1, 9)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, 9, limit)

	skip, limit = CalculateSkipLimit(3, 12)
	assert.Equal(t, int64(24), skip)
	assert.Equal(t, 12, limit)

	// Out-of-range inputs fall back instead of failing.
	skip, limit = CalculateSkipLimit(0, 0)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, MaxPageSize, limit)

	skip, limit = CalculateSkipLimit(2, 500)
	assert.Equal(t, int64(MaxPageSize), skip)
	assert.Equal(t, MaxPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	// 15 items at 9 per page: page 2 holds the remaining 6.
	info := NewPaginationInfo(15, 2, 9)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 2, info.TotalPages)
	assert.Equal(t, int64(15), info.TotalCount)
	assert.False(t, info.HasNext)
	assert.True(t, info.HasPrev)

	info = NewPaginationInfo(15, 1, 9)
	assert.True(t, info.HasNext)
	assert.False(t, info.HasPrev)

	info = NewPaginationInfo(0, 1, 9)
	assert.Equal(t, 0, info.TotalPages)
	assert.False(t, info.HasNext)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	parse := func(query string) (int, int) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+query, nil)
		return ParsePaginationParams(c, 9)
	}

	page, limit := parse("")
	assert.Equal(t, 1, page)
	assert.Equal(t, 9, limit)

	page, limit = parse("page=3&limit=12")
	assert.Equal(t, 3, page)
	assert.Equal(t, 12, limit)

	page, limit = parse("page=junk&limit=-4")
	assert.Equal(t, 1, page)
	assert.Equal(t, 9, limit)

	_, limit = parse("limit=1000")
	assert.Equal(t, 9, limit)
}
