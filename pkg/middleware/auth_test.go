package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/auth"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, params repository.ListUsersParams) ([]*entity.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context, params repository.ListUsersParams) (int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockDenylist struct {
	mock.Mock
}

func (m *mockDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *mockDenylist) IsRevoked(ctx context.Context, tokenID string) bool {
	args := m.Called(ctx, tokenID)
	return args.Bool(0)
}

func okHandler(sawIdentity *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
			*sawIdentity = true
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 24)
	userID := uuid.New()
	user := &entity.User{
		BaseSimple: entity.BaseSimple{ID: userID},
		Role:       entity.RoleUser,
	}

	t.Run("valid token passes with identity", func(t *testing.T) {
		token, _, _ := jwtService.GenerateToken(userID, "jon@example.com", "user")

		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, userID).Return(user, nil)
		denylist := new(mockDenylist)
		denylist.On("IsRevoked", mock.Anything, mock.Anything).Return(false)

		var sawIdentity bool
		handler := Auth(jwtService, denylist, repo, zap.NewNop())(okHandler(&sawIdentity))

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, sawIdentity)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		var sawIdentity bool
		handler := Auth(jwtService, new(mockDenylist), new(mockUserRepo), zap.NewNop())(okHandler(&sawIdentity))

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, sawIdentity)
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		token, _, _ := jwtService.GenerateToken(userID, "jon@example.com", "user")

		denylist := new(mockDenylist)
		denylist.On("IsRevoked", mock.Anything, mock.Anything).Return(true)

		var sawIdentity bool
		handler := Auth(jwtService, denylist, new(mockUserRepo), zap.NewNop())(okHandler(&sawIdentity))

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted user rejected", func(t *testing.T) {
		token, _, _ := jwtService.GenerateToken(userID, "jon@example.com", "user")

		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, userID).Return(nil, nil)
		denylist := new(mockDenylist)
		denylist.On("IsRevoked", mock.Anything, mock.Anything).Return(false)

		handler := Auth(jwtService, denylist, repo, zap.NewNop())(okHandler(new(bool)))

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, _, _ := auth.NewJWTService("other-secret", 24).GenerateToken(userID, "jon@example.com", "user")

		handler := Auth(jwtService, new(mockDenylist), new(mockUserRepo), zap.NewNop())(okHandler(new(bool)))

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthOptional(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 24)
	userID := uuid.New()

	t.Run("no token falls through anonymously", func(t *testing.T) {
		var sawIdentity bool
		handler := AuthOptional(jwtService, new(mockDenylist), new(mockUserRepo), zap.NewNop())(okHandler(&sawIdentity))

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, sawIdentity)
	})

	t.Run("bad token falls through anonymously", func(t *testing.T) {
		var sawIdentity bool
		handler := AuthOptional(jwtService, new(mockDenylist), new(mockUserRepo), zap.NewNop())(okHandler(&sawIdentity))

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, sawIdentity)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		token, _, _ := jwtService.GenerateToken(userID, "jon@example.com", "user")

		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, userID).Return(&entity.User{
			BaseSimple: entity.BaseSimple{ID: userID},
			Role:       entity.RoleUser,
		}, nil)
		denylist := new(mockDenylist)
		denylist.On("IsRevoked", mock.Anything, mock.Anything).Return(false)

		var sawIdentity bool
		handler := AuthOptional(jwtService, denylist, repo, zap.NewNop())(okHandler(&sawIdentity))

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, sawIdentity)
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		allowed      []entity.UserRole
		expectedCode int
	}{
		{"allowed role", "admin", []entity.UserRole{entity.RoleAdmin}, http.StatusOK},
		{"one of several", "store_owner", []entity.UserRole{entity.RoleStoreOwner, entity.RoleAdmin}, http.StatusOK},
		{"denied role", "user", []entity.UserRole{entity.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(zap.NewNop(), tt.allowed...)(okHandler(new(bool)))

			req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
			ctx := utils.SetUserContext(req.Context(), uuid.New(), tt.role)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	handler := RequireRole(zap.NewNop(), entity.RoleAdmin)(okHandler(new(bool)))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
