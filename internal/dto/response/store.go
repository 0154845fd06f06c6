package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type StoreResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	OwnerID       *string   `json:"owner_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int64     `json:"total_ratings"`
}

// StoreWithUserRatingResponse adds the viewer's own rating. The field is
// present (null when unrated) only for authenticated viewers; anonymous
// listings use the plain StoreResponse so the key is absent entirely.
type StoreWithUserRatingResponse struct {
	StoreResponse
	UserRating *int `json:"user_rating"`
}

// StoresListResponse wraps either response shape with pagination.
type StoresListResponse struct {
	Stores     any            `json:"stores"`
	Pagination PaginationMeta `json:"pagination"`
}

// OwnedStoreResponse is the store block attached to a store owner's
// user detail.
type OwnedStoreResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// StoreSummaryResponse is one row of the owner dashboard.
type StoreSummaryResponse struct {
	StoreID       string  `json:"store_id"`
	StoreName     string  `json:"store_name"`
	StoreAddress  string  `json:"store_address"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

type MyStoresResponse struct {
	Stores []StoreSummaryResponse `json:"stores"`
}

func StoreViewToResponse(view *entity.StoreView) StoreResponse {
	resp := StoreResponse{
		ID:            view.ID.String(),
		Name:          view.Name,
		Email:         view.Email,
		Address:       view.Address,
		CreatedAt:     view.CreatedAt,
		AverageRating: view.AverageRating,
		TotalRatings:  view.TotalRatings,
	}
	if view.OwnerID != nil {
		ownerID := view.OwnerID.String()
		resp.OwnerID = &ownerID
	}
	return resp
}

func StoreViewToViewerResponse(view *entity.StoreView) StoreWithUserRatingResponse {
	return StoreWithUserRatingResponse{
		StoreResponse: StoreViewToResponse(view),
		UserRating:    view.UserRating,
	}
}

func SummaryToResponse(summary *entity.StoreSummary) StoreSummaryResponse {
	return StoreSummaryResponse{
		StoreID:       summary.StoreID.String(),
		StoreName:     summary.StoreName,
		StoreAddress:  summary.StoreAddress,
		AverageRating: summary.AverageRating,
		TotalRatings:  summary.TotalRatings,
	}
}

func SummaryToOwnedStore(summary *entity.StoreSummary) *OwnedStoreResponse {
	return &OwnedStoreResponse{
		ID:            summary.StoreID.String(),
		Name:          summary.StoreName,
		Email:         summary.StoreEmail,
		Address:       summary.StoreAddress,
		AverageRating: summary.AverageRating,
		TotalRatings:  summary.TotalRatings,
	}
}

// StoreToResponse converts a bare store (no aggregates yet) as returned
// from creation.
func StoreToResponse(store *entity.Store) StoreResponse {
	resp := StoreResponse{
		ID:        store.ID.String(),
		Name:      store.Name,
		Email:     store.Email,
		Address:   store.Address,
		CreatedAt: store.CreatedAt,
	}
	if store.OwnerID != nil {
		ownerID := store.OwnerID.String()
		resp.OwnerID = &ownerID
	}
	return resp
}
