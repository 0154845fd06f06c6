// internal/wire/wire.go
package wire

import (
	"net/http"

	"store-rating/internal/adaptor"
	"store-rating/internal/data/repository"
	"store-rating/internal/usecase"
	"store-rating/pkg/auth"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	jwt *auth.JWTService,
	denylist auth.TokenDenylist,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, jwt, denylist, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, jwt, denylist, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	jwt *auth.JWTService,
	denylist auth.TokenDenylist,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, jwt, denylist, logger)
	wireStore(r, handler.Store, repo, jwt, denylist, logger)
	wireRating(r, handler.Rating, repo, jwt, denylist, logger)
	wireAdmin(r, handler.Admin, repo, jwt, denylist, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
