package entity

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	StoreID uuid.UUID `db:"store_id"`
	Rating  int       `db:"rating"` // 1-5
}

// RatingWithStore joins a rating to the store it was left on.
type RatingWithStore struct {
	ID           uuid.UUID `db:"id"`
	Rating       int       `db:"rating"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	StoreID      uuid.UUID `db:"store_id"`
	StoreName    string    `db:"store_name"`
	StoreAddress string    `db:"store_address"`
}

// RatingWithUser joins a rating to the user who left it.
type RatingWithUser struct {
	ID        uuid.UUID `db:"id"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	UserID    uuid.UUID `db:"user_id"`
	UserName  string    `db:"user_name"`
	UserEmail string    `db:"user_email"`
}

// RatingStats are the per-store aggregates: mean and count.
type RatingStats struct {
	AverageRating float64 `db:"average_rating"`
	TotalRatings  int64   `db:"total_ratings"`
}
