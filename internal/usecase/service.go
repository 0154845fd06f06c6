package usecase

import (
	"store-rating/internal/data/repository"
	"store-rating/pkg/auth"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Store  StoreService
	Rating RatingService
}

func NewService(repo *repository.Repository, jwt *auth.JWTService, denylist auth.TokenDenylist, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, jwt, denylist, log),
		User:   NewUserService(repo, log),
		Store:  NewStoreService(repo, log),
		Rating: NewRatingService(repo, log),
	}
}
