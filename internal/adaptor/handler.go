package adaptor

import (
	"errors"
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Store  *StoreHandler
	Rating *RatingHandler
	Admin  *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Store:  NewStoreHandler(service.Store, log),
		Rating: NewRatingHandler(service.Rating, log),
		Admin:  NewAdminHandler(service.User, service.Store, log),
	}
}

// respondServiceError maps service failure classes onto status codes.
// Unknown errors are logged and surfaced as a generic 500 so no internal
// detail leaks to the caller.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrStoreEmailTaken):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrOwnerNotFound),
		errors.Is(err, usecase.ErrOwnerRoleRequired):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrWrongPassword):
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrStoreAccessDenied):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrStoreNotFound):
		log.Warn(operation+" not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads ?page and ?limit with the platform defaults
func parsePagination(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()

	page := utils.ParseInt(query.Get("page"), 1)
	limit := utils.ParseInt(query.Get("limit"), 10)
	if limit > 100 {
		limit = 100
	}

	return &request.PaginatedRequest{
		Page:  page,
		Limit: limit,
	}
}

// parseListQuery reads the shared filter/sort/pagination query params
func parseListQuery(r *http.Request) *request.ListQuery {
	query := r.URL.Query()

	return &request.ListQuery{
		PaginatedRequest: *parsePagination(r),
		Name:             query.Get("name"),
		Email:            query.Get("email"),
		Address:          query.Get("address"),
		Role:             query.Get("role"),
		SortBy:           query.Get("sortBy"),
		SortOrder:        query.Get("sortOrder"),
	}
}
