package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/repository"
	"store-rating/pkg/auth"
	"store-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStore(
	r chi.Router,
	storeHandler *adaptor.StoreHandler,
	repo *repository.Repository,
	jwt *auth.JWTService,
	denylist auth.TokenDenylist,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/stores - browse stores; a valid token enriches each row
	// with the caller's own rating
	r.With(middleware.AuthOptional(jwt, denylist, repo.User, log)).
		Get("/api/stores", storeHandler.ListStores)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwt, denylist, repo.User, log))

		// GET /api/stores/{id} - store detail with the caller's rating
		r.Get("/api/stores/{id}", storeHandler.GetStore)
	})
}
