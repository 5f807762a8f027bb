package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		wantPages  int
		wantNext   bool
		wantPrev   bool
		wantOffset int
	}{
		{name: "middle page", page: 2, limit: 50, total: 120, wantPages: 3, wantNext: true, wantPrev: true, wantOffset: 50},
		{name: "first page", page: 1, limit: 50, total: 120, wantPages: 3, wantNext: true, wantPrev: false, wantOffset: 0},
		{name: "last page", page: 3, limit: 50, total: 120, wantPages: 3, wantNext: false, wantPrev: true, wantOffset: 100},
		{name: "exact multiple", page: 2, limit: 50, total: 100, wantPages: 2, wantNext: false, wantPrev: true, wantOffset: 50},
		{name: "empty ledger", page: 1, limit: 50, total: 0, wantPages: 0, wantNext: false, wantPrev: false, wantOffset: 0},
		{name: "single partial page", page: 1, limit: 50, total: 7, wantPages: 1, wantNext: false, wantPrev: false, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNextPage)
			assert.Equal(t, tt.wantPrev, p.HasPrevPage)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, tt.total, p.TotalItems)
		})
	}
}

func TestNewPaginationNormalizes(t *testing.T) {
	p := NewPagination(0, 0, 10)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, DefaultPageLimit, p.ItemsPerPage)
	assert.Equal(t, 0, p.Offset())

	p = NewPagination(-3, -1, 10)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, DefaultPageLimit, p.ItemsPerPage)
}
