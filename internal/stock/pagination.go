package stock

// DefaultPageLimit matches the dashboard's page size.
const DefaultPageLimit = 50

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
}

// NewPagination normalizes page/limit (page < 1 becomes 1, limit < 1 becomes
// DefaultPageLimit) and computes the paging envelope over total rows.
func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// Offset is the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.ItemsPerPage
}
