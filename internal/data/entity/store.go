package entity

import (
	"github.com/google/uuid"
)

type Store struct {
	BaseSimple
	Name    string     `db:"name"`
	Email   string     `db:"email"`
	Address string     `db:"address"`
	OwnerID *uuid.UUID `db:"owner_id"`
}

// StoreView is a Store together with its aggregates, computed on read.
// UserRating carries the viewing user's own rating when a viewer is known.
type StoreView struct {
	Store
	AverageRating float64 `db:"average_rating"`
	TotalRatings  int64   `db:"total_ratings"`
	UserRating    *int    `db:"user_rating"`
}

// StoreSummary is the owner-dashboard projection of a store.
type StoreSummary struct {
	StoreID       uuid.UUID `db:"store_id"`
	StoreName     string    `db:"store_name"`
	StoreEmail    string    `db:"store_email"`
	StoreAddress  string    `db:"store_address"`
	AverageRating float64   `db:"average_rating"`
	TotalRatings  int64     `db:"total_ratings"`
}
