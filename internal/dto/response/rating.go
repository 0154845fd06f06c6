package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StoreID   string    `json:"store_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RatingWithStoreResponse struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	StoreID      string    `json:"store_id"`
	StoreName    string    `json:"store_name"`
	StoreAddress string    `json:"store_address"`
}

type RatingWithUserResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}

type MyRatingsResponse struct {
	Ratings    []RatingWithStoreResponse `json:"ratings"`
	Pagination PaginationMeta            `json:"pagination"`
}

// StoreRatingsResponse is the owner/admin view of one store's ratings.
type StoreRatingsResponse struct {
	StoreID       string                   `json:"store_id"`
	AverageRating float64                  `json:"average_rating"`
	TotalRatings  int64                    `json:"total_ratings"`
	Ratings       []RatingWithUserResponse `json:"ratings"`
	Pagination    PaginationMeta           `json:"pagination"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		UserID:    rating.UserID.String(),
		StoreID:   rating.StoreID.String(),
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

func RatingWithStoreToResponse(rating *entity.RatingWithStore) RatingWithStoreResponse {
	return RatingWithStoreResponse{
		ID:           rating.ID.String(),
		Rating:       rating.Rating,
		CreatedAt:    rating.CreatedAt,
		UpdatedAt:    rating.UpdatedAt,
		StoreID:      rating.StoreID.String(),
		StoreName:    rating.StoreName,
		StoreAddress: rating.StoreAddress,
	}
}

func RatingWithUserToResponse(rating *entity.RatingWithUser) RatingWithUserResponse {
	return RatingWithUserResponse{
		ID:        rating.ID.String(),
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
		UserID:    rating.UserID.String(),
		UserName:  rating.UserName,
		UserEmail: rating.UserEmail,
	}
}
