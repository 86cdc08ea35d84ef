package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookshelf/pkg/pagination"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		size      int
		total     int
		wantStart int
		wantEnd   int
	}{
		{"first_full_page", 1, 36, 150, 0, 36},
		{"second_page", 2, 36, 150, 36, 72},
		{"partial_last_page", 2, 36, 40, 36, 40},
		{"past_the_end", 3, 36, 40, 40, 40},
		{"empty_total", 1, 36, 0, 0, 0},
		{"invalid_page", 0, 36, 40, 0, 0},
		{"invalid_size", 1, 0, 40, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pagination.Window(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestRemaining_NeverNegative(t *testing.T) {
	assert.Equal(t, 4, pagination.Remaining(1, 36, 40))
	assert.Equal(t, 0, pagination.Remaining(2, 36, 40))
	assert.Equal(t, 0, pagination.Remaining(9, 36, 40))
	assert.Equal(t, 0, pagination.Remaining(1, 36, 0))
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(1, 36, 40)

	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 36, meta.Limit)
	assert.Equal(t, 36, meta.Shown)
	assert.Equal(t, 40, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, 4, meta.Remaining)
	assert.False(t, meta.Empty)

	assert.True(t, pagination.NewMeta(1, 36, 0).Empty)
}
