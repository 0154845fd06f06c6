package repository

import (
	"strings"

	"store-rating/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Store  StoreRepository
	Rating RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Store:  NewStoreRepository(db, log),
		Rating: NewRatingRepository(db, log),
	}
}

// orderClause resolves a requested sort against a column whitelist.
// Unknown fields fall back to the given column, unknown orders to ASC,
// so user input never reaches the SQL text directly.
func orderClause(allowed map[string]string, sortBy, sortOrder, fallback string) string {
	column, ok := allowed[sortBy]
	if !ok {
		column = allowed[fallback]
	}

	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}
