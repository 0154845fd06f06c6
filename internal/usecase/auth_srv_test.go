package usecase

import (
	"context"
	"testing"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/dto/request"
	"store-rating/pkg/auth"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           *request.RegisterRequest
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			req: &request.RegisterRequest{
				Name:     "Jonathan Alexander Smithson",
				Email:    "jon@example.com",
				Password: "Password1!",
				Address:  "12 Main Street",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jon@example.com").Return(nil, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "email already registered",
			req: &request.RegisterRequest{
				Name:     "Jonathan Alexander Smithson",
				Email:    "taken@example.com",
				Password: "Password1!",
				Address:  "12 Main Street",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").
					Return(&entity.User{Email: "taken@example.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			repo := newTestRepository(mockUsers, nil, nil)
			jwtService := auth.NewJWTService("test-secret", 24)
			service := NewAuthService(repo, jwtService, new(MockTokenDenylist), zap.NewNop())

			resp, err := service.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, resp)
				assert.Equal(t, tt.req.Email, resp.User.Email)
				assert.Equal(t, entity.RoleUser, resp.User.Role)
				assert.NotEmpty(t, resp.Token)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_AssignsUserRole(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleUser && u.PasswordHash != "Password1!"
	})).Return(nil)

	repo := newTestRepository(mockUsers, nil, nil)
	service := NewAuthService(repo, auth.NewJWTService("test-secret", 24), new(MockTokenDenylist), zap.NewNop())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "Jonathan Alexander Smithson",
		Email:    "jon@example.com",
		Password: "Password1!",
		Address:  "12 Main Street",
	})

	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := utils.HashPassword("Password1!")
	userID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "jon@example.com",
			password: "Password1!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jon@example.com").Return(&entity.User{
					BaseSimple:   entity.BaseSimple{ID: userID},
					Email:        "jon@example.com",
					PasswordHash: hashed,
					Role:         entity.RoleUser,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "Password1!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "jon@example.com",
			password: "WrongPass1!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jon@example.com").Return(&entity.User{
					BaseSimple:   entity.BaseSimple{ID: userID},
					Email:        "jon@example.com",
					PasswordHash: hashed,
					Role:         entity.RoleUser,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			repo := newTestRepository(mockUsers, nil, nil)
			service := NewAuthService(repo, auth.NewJWTService("test-secret", 24), new(MockTokenDenylist), zap.NewNop())

			resp, err := service.Login(context.Background(), &request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, resp)
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, tt.email, resp.User.Email)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 24)
	token, _, err := jwtService.GenerateToken(uuid.New(), "jon@example.com", "user")
	assert.NoError(t, err)

	mockDenylist := new(MockTokenDenylist)
	mockDenylist.On("Revoke", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= 24*time.Hour
	})).Return(nil)

	repo := newTestRepository(new(MockUserRepository), nil, nil)
	service := NewAuthService(repo, jwtService, mockDenylist, zap.NewNop())

	assert.NoError(t, service.Logout(context.Background(), token))
	mockDenylist.AssertExpectations(t)
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	repo := newTestRepository(new(MockUserRepository), nil, nil)
	service := NewAuthService(repo, auth.NewJWTService("test-secret", 24), new(MockTokenDenylist), zap.NewNop())

	err := service.Logout(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, _ := utils.HashPassword("Current1!")
	userID := uuid.New()

	tests := []struct {
		name          string
		req           *request.ChangePasswordRequest
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful change",
			req: &request.ChangePasswordRequest{
				CurrentPassword: "Current1!",
				NewPassword:     "Updated1!",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&entity.User{
					BaseSimple:   entity.BaseSimple{ID: userID},
					PasswordHash: hashed,
				}, nil)
				m.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "wrong current password",
			req: &request.ChangePasswordRequest{
				CurrentPassword: "NotCurrent1!",
				NewPassword:     "Updated1!",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&entity.User{
					BaseSimple:   entity.BaseSimple{ID: userID},
					PasswordHash: hashed,
				}, nil)
			},
			expectedError: ErrWrongPassword,
		},
		{
			name: "user not found",
			req: &request.ChangePasswordRequest{
				CurrentPassword: "Current1!",
				NewPassword:     "Updated1!",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			repo := newTestRepository(mockUsers, nil, nil)
			service := NewAuthService(repo, auth.NewJWTService("test-secret", 24), new(MockTokenDenylist), zap.NewNop())

			err := service.ChangePassword(context.Background(), userID, tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}
