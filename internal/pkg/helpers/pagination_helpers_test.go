package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNormalizePageLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "in range untouched", page: 3, limit: 25, wantPage: 3, wantLimit: 25},
		{name: "zero page defaults", page: 0, limit: 10, wantPage: 1, wantLimit: 10},
		{name: "negative page defaults", page: -5, limit: 10, wantPage: 1, wantLimit: 10},
		{name: "zero limit defaults", page: 2, limit: 0, wantPage: 2, wantLimit: DefaultPageSize},
		{name: "oversized limit capped", page: 1, limit: 500, wantPage: 1, wantLimit: MaxPageSize},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			page, limit := NormalizePageLimit(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	t.Parallel()

	offset, limit := CalculateOffsetLimit(1, 20)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 20, limit)

	offset, limit = CalculateOffsetLimit(3, 10)
	assert.Equal(t, uint64(20), offset)
	assert.Equal(t, 10, limit)

	// Normalization applies before the offset math.
	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	t.Parallel()

	info := NewPaginationInfo(45, 2, 20)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 20, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)

	// An empty result set still reports one page when on page 1.
	info = NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)

	// Past-the-end pages are pulled back to the last real page.
	info = NewPaginationInfo(10, 9, 20)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
}

func TestParsePaginationParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 20},
		{name: "explicit values", query: "page=4&limit=50", wantPage: 4, wantLimit: 50},
		{name: "garbage falls back", query: "page=abc&limit=xyz", wantPage: 1, wantLimit: 20},
		{name: "oversized limit capped", query: "limit=1000", wantPage: 1, wantLimit: 100},
		{name: "negative values fall back", query: "page=-1&limit=-5", wantPage: 1, wantLimit: 20},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tc.query, nil)

			page, limit := ParsePaginationParams(c)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}
