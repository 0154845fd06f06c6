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

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	repo *repository.Repository,
	jwt *auth.JWTService,
	denylist auth.TokenDenylist,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwt, denylist, repo.User, log))

		// POST /api/ratings - submit or revise a rating
		r.Post("/api/ratings", ratingHandler.SubmitRating)

		// GET /api/ratings/my-ratings - the caller's rating history
		r.Get("/api/ratings/my-ratings", ratingHandler.MyRatings)

		// GET /api/ratings/store/{storeId} - ratings received by a store
		// (store owner or admin; ownership is checked in the service)
		r.With(middleware.RequireRole(log, entity.RoleStoreOwner, entity.RoleAdmin)).
			Get("/api/ratings/store/{storeId}", ratingHandler.StoreRatings)

		// GET /api/ratings/my-stores - summaries of the caller's stores
		r.With(middleware.RequireRole(log, entity.RoleStoreOwner)).
			Get("/api/ratings/my-stores", ratingHandler.MyStores)
	})
}
