package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingRepository interface {
	// Upsert inserts the user's rating for a store, or updates it in place
	// when one already exists. Returns the row and whether it was inserted.
	Upsert(ctx context.Context, userID, storeID uuid.UUID, rating int) (*entity.Rating, bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.RatingWithStore, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.RatingWithUser, error)
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	StatsByStore(ctx context.Context, storeID uuid.UUID) (*entity.RatingStats, error)
	CountAll(ctx context.Context) (int64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

// Upsert is a single atomic statement: the uniqueness constraint on
// (user_id, store_id) turns a racing duplicate insert into the update
// branch, so concurrent submissions from the same user can never produce
// two rows. xmax = 0 only holds for rows created by this statement, which
// distinguishes insert from update in the same round trip.
func (rr *ratingRepository) Upsert(ctx context.Context, userID, storeID uuid.UUID, rating int) (*entity.Rating, bool, error) {
	query := `
		INSERT INTO ratings (id, user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
		RETURNING id, user_id, store_id, rating, created_at, updated_at, (xmax = 0) AS inserted
	`

	var record entity.Rating
	var inserted bool
	err := rr.db.QueryRow(ctx, query, uuid.New(), userID, storeID, rating).Scan(
		&record.ID,
		&record.UserID,
		&record.StoreID,
		&record.Rating,
		&record.CreatedAt,
		&record.UpdatedAt,
		&inserted,
	)

	if err != nil {
		rr.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID.String()),
		)
		return nil, false, fmt.Errorf("upsert rating for store %s by user %s: %w",
			storeID.String(), userID.String(), err)
	}

	return &record, inserted, nil
}

// ListByUser joins ratings to their stores, most recently updated first
func (rr *ratingRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.RatingWithStore, error) {
	query := `
		SELECT r.id, r.rating, r.created_at, r.updated_at,
		       s.id AS store_id, s.name AS store_name, s.address AS store_address
		FROM ratings r
		JOIN stores s ON s.id = r.store_id
		WHERE r.user_id = $1
		ORDER BY r.updated_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := rr.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		rr.log.Error("Failed to list ratings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list ratings by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var ratings []*entity.RatingWithStore
	for rows.Next() {
		var rating entity.RatingWithStore
		err := rows.Scan(
			&rating.ID,
			&rating.Rating,
			&rating.CreatedAt,
			&rating.UpdatedAt,
			&rating.StoreID,
			&rating.StoreName,
			&rating.StoreAddress,
		)
		if err != nil {
			rr.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

func (rr *ratingRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings WHERE user_id = $1`

	var count int64
	err := rr.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		rr.log.Error("Failed to count ratings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count ratings by user %s: %w", userID.String(), err)
	}

	return count, nil
}

// ListByStore joins ratings to their authors, newest first
func (rr *ratingRepository) ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.RatingWithUser, error) {
	query := `
		SELECT r.id, r.rating, r.created_at, r.updated_at,
		       u.id AS user_id, u.name AS user_name, u.email AS user_email
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := rr.db.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		rr.log.Error("Failed to list ratings by store",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("list ratings by store %s: %w", storeID.String(), err)
	}
	defer rows.Close()

	var ratings []*entity.RatingWithUser
	for rows.Next() {
		var rating entity.RatingWithUser
		err := rows.Scan(
			&rating.ID,
			&rating.Rating,
			&rating.CreatedAt,
			&rating.UpdatedAt,
			&rating.UserID,
			&rating.UserName,
			&rating.UserEmail,
		)
		if err != nil {
			rr.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

func (rr *ratingRepository) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings WHERE store_id = $1`

	var count int64
	err := rr.db.QueryRow(ctx, query, storeID).Scan(&count)
	if err != nil {
		rr.log.Error("Failed to count ratings by store",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return 0, fmt.Errorf("count ratings by store %s: %w", storeID.String(), err)
	}

	return count, nil
}

// StatsByStore computes the mean and count on read, never cached
func (rr *ratingRepository) StatsByStore(ctx context.Context, storeID uuid.UUID) (*entity.RatingStats, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0) AS average_rating,
		       COUNT(*) AS total_ratings
		FROM ratings
		WHERE store_id = $1
	`

	var stats entity.RatingStats
	err := rr.db.QueryRow(ctx, query, storeID).Scan(
		&stats.AverageRating,
		&stats.TotalRatings,
	)
	if err != nil {
		rr.log.Error("Failed to get rating stats",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("get rating stats for store %s: %w", storeID.String(), err)
	}

	return &stats, nil
}

func (rr *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Failed to count all ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}
