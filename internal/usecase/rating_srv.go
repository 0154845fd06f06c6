package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	// SubmitRating upserts the caller's rating for a store. The returned
	// flag reports whether a new row was created (201) or an existing one
	// updated (200).
	SubmitRating(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) (*response.RatingResponse, bool, error)
	MyRatings(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.MyRatingsResponse, error)
	StoreRatings(ctx context.Context, storeID, requesterID uuid.UUID, requesterRole entity.UserRole, page *request.PaginatedRequest) (*response.StoreRatingsResponse, error)
	MyStores(ctx context.Context, ownerID uuid.UUID) (*response.MyStoresResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) SubmitRating(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) (*response.RatingResponse, bool, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, false, ErrStoreNotFound
	}

	store, err := s.repo.Store.FindByID(ctx, storeID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", req.StoreID))
		return nil, false, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return nil, false, ErrStoreNotFound
	}

	record, created, err := s.repo.Rating.Upsert(ctx, userID, storeID, req.Rating)
	if err != nil {
		s.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", req.StoreID))
		return nil, false, fmt.Errorf("upsert rating: %w", err)
	}

	s.log.Info("Rating submitted",
		zap.String("user_id", userID.String()),
		zap.String("store_id", req.StoreID),
		zap.Int("rating", req.Rating),
		zap.Bool("created", created))

	resp := response.RatingToResponse(record)
	return &resp, created, nil
}

func (s *ratingService) MyRatings(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.MyRatingsResponse, error) {
	ratings, err := s.repo.Rating.ListByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		s.log.Error("Failed to list ratings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	total, err := s.repo.Rating.CountByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count ratings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	items := make([]response.RatingWithStoreResponse, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, response.RatingWithStoreToResponse(rating))
	}

	return &response.MyRatingsResponse{
		Ratings:    items,
		Pagination: response.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

// StoreRatings lists one store's ratings for its owner or an admin.
// Non-admin requesters must own the store.
func (s *ratingService) StoreRatings(ctx context.Context, storeID, requesterID uuid.UUID, requesterRole entity.UserRole, page *request.PaginatedRequest) (*response.StoreRatingsResponse, error) {
	store, err := s.repo.Store.FindByID(ctx, storeID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	if requesterRole != entity.RoleAdmin {
		if store.OwnerID == nil || *store.OwnerID != requesterID {
			s.log.Warn("Store ratings access denied",
				zap.String("store_id", storeID.String()),
				zap.String("requester_id", requesterID.String()))
			return nil, ErrStoreAccessDenied
		}
	}

	ratings, err := s.repo.Rating.ListByStore(ctx, storeID, page.Limit, page.Offset())
	if err != nil {
		s.log.Error("Failed to list store ratings", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("list store ratings: %w", err)
	}

	total, err := s.repo.Rating.CountByStore(ctx, storeID)
	if err != nil {
		s.log.Error("Failed to count store ratings", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("count store ratings: %w", err)
	}

	stats, err := s.repo.Rating.StatsByStore(ctx, storeID)
	if err != nil {
		s.log.Error("Failed to get rating stats", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("get rating stats: %w", err)
	}

	items := make([]response.RatingWithUserResponse, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, response.RatingWithUserToResponse(rating))
	}

	return &response.StoreRatingsResponse{
		StoreID:       storeID.String(),
		AverageRating: stats.AverageRating,
		TotalRatings:  stats.TotalRatings,
		Ratings:       items,
		Pagination:    response.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

// MyStores lists all stores owned by the caller with their aggregates.
func (s *ratingService) MyStores(ctx context.Context, ownerID uuid.UUID) (*response.MyStoresResponse, error) {
	summaries, err := s.repo.Store.FindSummariesByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to find owned stores", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("find owned stores: %w", err)
	}

	items := make([]response.StoreSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, response.SummaryToResponse(summary))
	}

	return &response.MyStoresResponse{Stores: items}, nil
}
