package request

import "store-rating/pkg/utils"

type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit)
}

// ListQuery extends pagination with the shared filter and sort inputs.
type ListQuery struct {
	PaginatedRequest
	Name      string
	Email     string
	Address   string
	Role      string
	SortBy    string
	SortOrder string
}
