package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/auth"
	"store-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	jwt *auth.JWTService,
	denylist auth.TokenDenylist,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwt, denylist, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Get("/api/admin/dashboard", adminHandler.Dashboard)

		r.Post("/api/admin/users", adminHandler.CreateUser)
		r.Get("/api/admin/users", adminHandler.ListUsers)
		r.Get("/api/admin/users/{id}", adminHandler.GetUser)

		r.Post("/api/admin/stores", adminHandler.CreateStore)
		r.Get("/api/admin/stores", adminHandler.ListStores)
	})
}
