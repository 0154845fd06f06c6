package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/repository"
	"store-rating/pkg/auth"
	"store-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	jwt *auth.JWTService,
	denylist auth.TokenDenylist,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwt, denylist, repo.User, log))

		r.Post("/api/auth/logout", authHandler.Logout)
		r.Put("/api/auth/password", authHandler.ChangePassword)
		r.Get("/api/auth/me", authHandler.Me)
	})
}
