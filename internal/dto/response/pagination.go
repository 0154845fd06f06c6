package response

import "store-rating/pkg/utils"

// PaginationMeta is the envelope attached to every paginated listing.
// Page is 1-indexed; Pages == ceil(Total / Limit).
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	return PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: utils.CalculateTotalPages(total, limit),
	}
}
