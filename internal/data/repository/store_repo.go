package repository

import (
	"context"
	"fmt"
	"strings"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ListStoresParams carries filter, sort, and pagination inputs for store
// listing. ViewerID, when set, attaches that user's own rating to each row.
type ListStoresParams struct {
	Name      string
	Email     string
	Address   string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
	ViewerID  *uuid.UUID
}

var storeSortColumns = map[string]string{
	"name":           "s.name",
	"email":          "s.email",
	"address":        "s.address",
	"average_rating": "average_rating",
	"created_at":     "s.created_at",
}

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	FindByEmail(ctx context.Context, email string) (*entity.Store, error)
	ListViews(ctx context.Context, params ListStoresParams) ([]*entity.StoreView, error)
	Count(ctx context.Context, params ListStoresParams) (int64, error)
	FindViewByID(ctx context.Context, id, viewerID uuid.UUID) (*entity.StoreView, error)
	FindSummariesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.StoreSummary, error)
	CountAll(ctx context.Context) (int64, error)
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := sr.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("email", store.Email),
		)
		return fmt.Errorf("create store %s: %w", store.Email, err)
	}

	return nil
}

func (sr *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at
		FROM stores
		WHERE id = $1
	`

	var store entity.Store
	err := sr.db.QueryRow(ctx, query, id).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by ID",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return nil, fmt.Errorf("find store by ID %s: %w", id.String(), err)
	}

	return &store, nil
}

func (sr *storeRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at
		FROM stores
		WHERE email = $1
	`

	var store entity.Store
	err := sr.db.QueryRow(ctx, query, email).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find store by email %s: %w", email, err)
	}

	return &store, nil
}

// storeFilterClause builds the WHERE conditions shared by ListViews and Count.
// Conditions are appended after any viewer arg already in args.
func storeFilterClause(params ListStoresParams, args []any) (string, []any) {
	var conditions []string

	if params.Name != "" {
		args = append(args, "%"+params.Name+"%")
		conditions = append(conditions, fmt.Sprintf("s.name ILIKE $%d", len(args)))
	}
	if params.Email != "" {
		args = append(args, "%"+params.Email+"%")
		conditions = append(conditions, fmt.Sprintf("s.email ILIKE $%d", len(args)))
	}
	if params.Address != "" {
		args = append(args, "%"+params.Address+"%")
		conditions = append(conditions, fmt.Sprintf("s.address ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// ListViews retrieves stores together with their rating aggregates. The
// aggregates come from a LEFT JOIN so unrated stores report average 0.
func (sr *storeRepository) ListViews(ctx context.Context, params ListStoresParams) ([]*entity.StoreView, error) {
	var args []any

	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
		       COALESCE(AVG(r.rating), 0) AS average_rating,
		       COUNT(r.id) AS total_ratings`

	if params.ViewerID != nil {
		query += `,
		       ur.rating AS user_rating`
	}

	query += `
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id`

	if params.ViewerID != nil {
		args = append(args, *params.ViewerID)
		query += fmt.Sprintf(`
		LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = $%d`, len(args))
	}

	where, args := storeFilterClause(params, args)
	query += where

	query += `
		GROUP BY s.id, s.name, s.email, s.address, s.owner_id, s.created_at`
	if params.ViewerID != nil {
		query += `, ur.rating`
	}

	query += " ORDER BY " + orderClause(storeSortColumns, params.SortBy, params.SortOrder, "name")

	args = append(args, params.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, params.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to list stores",
			zap.Error(err),
			zap.Int("limit", params.Limit),
			zap.Int("offset", params.Offset),
		)
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.StoreView
	for rows.Next() {
		var view entity.StoreView

		dest := []any{
			&view.ID,
			&view.Name,
			&view.Email,
			&view.Address,
			&view.OwnerID,
			&view.CreatedAt,
			&view.AverageRating,
			&view.TotalRatings,
		}
		if params.ViewerID != nil {
			dest = append(dest, &view.UserRating)
		}

		if err := rows.Scan(dest...); err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &view)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate store rows: %w", err)
	}

	return stores, nil
}

// Count returns the total matching rows for the same filter set as ListViews
func (sr *storeRepository) Count(ctx context.Context, params ListStoresParams) (int64, error) {
	params.ViewerID = nil // viewer join does not change the row count

	where, args := storeFilterClause(params, nil)
	query := `SELECT COUNT(*) FROM stores s` + where

	var count int64
	err := sr.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		sr.log.Error("Failed to count stores", zap.Error(err))
		return 0, fmt.Errorf("count stores: %w", err)
	}

	return count, nil
}

// FindViewByID returns one store with aggregates and the viewer's own rating.
func (sr *storeRepository) FindViewByID(ctx context.Context, id, viewerID uuid.UUID) (*entity.StoreView, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
		       COALESCE(AVG(r.rating), 0) AS average_rating,
		       COUNT(r.id) AS total_ratings,
		       ur.rating AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = $2
		WHERE s.id = $1
		GROUP BY s.id, s.name, s.email, s.address, s.owner_id, s.created_at, ur.rating
	`

	var view entity.StoreView
	err := sr.db.QueryRow(ctx, query, id, viewerID).Scan(
		&view.ID,
		&view.Name,
		&view.Email,
		&view.Address,
		&view.OwnerID,
		&view.CreatedAt,
		&view.AverageRating,
		&view.TotalRatings,
		&view.UserRating,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store view",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return nil, fmt.Errorf("find store view %s: %w", id.String(), err)
	}

	return &view, nil
}

// FindSummariesByOwner lists an owner's stores with aggregates, by store name.
func (sr *storeRepository) FindSummariesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.StoreSummary, error) {
	query := `
		SELECT s.id AS store_id, s.name AS store_name, s.email AS store_email,
		       s.address AS store_address,
		       COALESCE(AVG(r.rating), 0) AS average_rating,
		       COUNT(r.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE s.owner_id = $1
		GROUP BY s.id, s.name, s.email, s.address
		ORDER BY s.name
	`

	rows, err := sr.db.Query(ctx, query, ownerID)
	if err != nil {
		sr.log.Error("Failed to find stores by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find stores by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var summaries []*entity.StoreSummary
	for rows.Next() {
		var summary entity.StoreSummary
		err := rows.Scan(
			&summary.StoreID,
			&summary.StoreName,
			&summary.StoreEmail,
			&summary.StoreAddress,
			&summary.AverageRating,
			&summary.TotalRatings,
		)
		if err != nil {
			sr.log.Error("Failed to scan store summary row", zap.Error(err))
			return nil, fmt.Errorf("scan store summary row: %w", err)
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate store summary rows: %w", err)
	}

	return summaries, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Failed to count all stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}
