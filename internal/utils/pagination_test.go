package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(query string) PaginationParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/todos?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "page=3&limit=20", 3, 20, 40},
		{"page below minimum", "page=0&limit=5", 1, 5, 0},
		{"negative page", "page=-2", 1, 10, 0},
		{"limit below minimum", "limit=0", 1, 10, 0},
		{"limit above maximum", "limit=500", 1, 10, 0},
		{"garbage values", "page=abc&limit=xyz", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := paramsForQuery(tt.query)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOffset, params.Offset)
		})
	}
}

func TestNewPaginationResponse(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		totalCount int64
		wantPages  int
	}{
		{"exact multiple", 10, 30, 3},
		{"remainder rounds up", 10, 31, 4},
		{"less than one page", 10, 3, 1},
		{"empty", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPaginationResponse(PaginationParams{Page: 1, Limit: tt.limit}, tt.totalCount)
			assert.Equal(t, tt.wantPages, resp.TotalPages)
			assert.Equal(t, tt.totalCount, resp.TotalCount)
		})
	}
}
