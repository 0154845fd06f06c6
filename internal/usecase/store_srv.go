package usecase

import (
	"context"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreService interface {
	CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error)
	ListStores(ctx context.Context, query *request.ListQuery, viewerID *uuid.UUID) (*response.StoresListResponse, error)
	GetStoreDetail(ctx context.Context, id, viewerID uuid.UUID) (*response.StoreWithUserRatingResponse, error)
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log.With(zap.String("service", "store")),
	}
}

// CreateStore registers a new store. A given owner must exist and hold
// the store_owner role.
func (s *storeService) CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error) {
	existing, err := s.repo.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check store email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check store email: %w", err)
	}
	if existing != nil {
		return nil, ErrStoreEmailTaken
	}

	var ownerID *uuid.UUID
	if req.OwnerID != "" {
		parsed, err := uuid.Parse(req.OwnerID)
		if err != nil {
			return nil, ErrOwnerNotFound
		}

		owner, err := s.repo.User.FindByID(ctx, parsed)
		if err != nil {
			s.log.Error("Failed to find owner", zap.Error(err), zap.String("owner_id", req.OwnerID))
			return nil, fmt.Errorf("find owner: %w", err)
		}
		if owner == nil {
			return nil, ErrOwnerNotFound
		}
		if owner.Role != entity.RoleStoreOwner {
			return nil, ErrOwnerRoleRequired
		}

		ownerID = &parsed
	}

	store := &entity.Store{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	}

	if err := s.repo.Store.Create(ctx, store); err != nil {
		s.log.Error("Failed to create store", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create store: %w", err)
	}

	s.log.Info("Store created",
		zap.String("store_id", store.ID.String()),
		zap.String("name", store.Name))

	resp := response.StoreToResponse(store)
	return &resp, nil
}

// ListStores returns stores with aggregates. An authenticated viewer also
// gets their own rating per store; anonymous listings omit the field.
func (s *storeService) ListStores(ctx context.Context, query *request.ListQuery, viewerID *uuid.UUID) (*response.StoresListResponse, error) {
	params := repository.ListStoresParams{
		Name:      query.Name,
		Email:     query.Email,
		Address:   query.Address,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Limit:     query.Limit,
		Offset:    query.Offset(),
		ViewerID:  viewerID,
	}

	views, err := s.repo.Store.ListViews(ctx, params)
	if err != nil {
		s.log.Error("Failed to list stores", zap.Error(err))
		return nil, fmt.Errorf("list stores: %w", err)
	}

	total, err := s.repo.Store.Count(ctx, params)
	if err != nil {
		s.log.Error("Failed to count stores", zap.Error(err))
		return nil, fmt.Errorf("count stores: %w", err)
	}

	var stores any
	if viewerID != nil {
		items := make([]response.StoreWithUserRatingResponse, 0, len(views))
		for _, view := range views {
			items = append(items, response.StoreViewToViewerResponse(view))
		}
		stores = items
	} else {
		items := make([]response.StoreResponse, 0, len(views))
		for _, view := range views {
			items = append(items, response.StoreViewToResponse(view))
		}
		stores = items
	}

	return &response.StoresListResponse{
		Stores:     stores,
		Pagination: response.NewPaginationMeta(query.Page, query.Limit, total),
	}, nil
}

func (s *storeService) GetStoreDetail(ctx context.Context, id, viewerID uuid.UUID) (*response.StoreWithUserRatingResponse, error) {
	view, err := s.repo.Store.FindViewByID(ctx, id, viewerID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", id.String()))
		return nil, fmt.Errorf("find store: %w", err)
	}
	if view == nil {
		return nil, ErrStoreNotFound
	}

	resp := response.StoreViewToViewerResponse(view)
	return &resp, nil
}
