package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		total         int64
		expectedPages int
	}{
		{"empty result", 1, 10, 0, 0},
		{"single partial page", 1, 10, 3, 1},
		{"exact page boundary", 1, 10, 20, 2},
		{"one row past boundary", 2, 10, 21, 3},
		{"zero limit", 1, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.expectedPages, meta.Pages)
		})
	}
}
