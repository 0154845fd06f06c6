package usecase

import (
	"context"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService backs the admin user-management endpoints.
type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	ListUsers(ctx context.Context, query *request.ListQuery) (*response.UsersListResponse, error)
	GetUserDetail(ctx context.Context, id uuid.UUID) (*response.UserDetailResponse, error)
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

// CreateUser is the admin variant of registration: the role is selectable
// and defaults to "user".
func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	role := entity.RoleUser
	if req.Role != "" {
		// The validator tag already constrains this; the enum check keeps
		// the service safe for callers that bypass the HTTP boundary
		if !entity.ValidRole(req.Role) {
			return nil, ErrInvalidRole
		}
		role = entity.UserRole(req.Role)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Address:      req.Address,
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, query *request.ListQuery) (*response.UsersListResponse, error) {
	params := repository.ListUsersParams{
		Name:      query.Name,
		Email:     query.Email,
		Address:   query.Address,
		Role:      query.Role,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Limit:     query.Limit,
		Offset:    query.Offset(),
	}

	users, err := s.repo.User.List(ctx, params)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.Count(ctx, params)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return &response.UsersListResponse{
		Users:      items,
		Pagination: response.NewPaginationMeta(query.Page, query.Limit, total),
	}, nil
}

// GetUserDetail returns a user and, for store owners, their store with
// its aggregates.
func (s *userService) GetUserDetail(ctx context.Context, id uuid.UUID) (*response.UserDetailResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detail := &response.UserDetailResponse{
		UserResponse: response.UserToResponse(user),
	}

	if user.Role == entity.RoleStoreOwner {
		summaries, err := s.repo.Store.FindSummariesByOwner(ctx, user.ID)
		if err != nil {
			s.log.Error("Failed to find owned stores", zap.Error(err), zap.String("user_id", id.String()))
			return nil, fmt.Errorf("find owned stores: %w", err)
		}
		if len(summaries) > 0 {
			detail.Store = response.SummaryToOwnedStore(summaries[0])
		}
	}

	return detail, nil
}

func (s *userService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalStores, err := s.repo.Store.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count stores", zap.Error(err))
		return nil, fmt.Errorf("count stores: %w", err)
	}

	totalRatings, err := s.repo.Rating.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count ratings", zap.Error(err))
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	return &response.DashboardResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}
