package adaptor

import (
	"encoding/json"
	"net/http"

	"store-rating/internal/data/entity"
	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// SubmitRating handles POST /api/ratings. A first rating for the store
// answers 201, re-rating the same store answers 200.
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, created, err := h.service.SubmitRating(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "submit rating")
		return
	}

	data := map[string]any{"rating": resp}
	if created {
		utils.ResponseCreated(w, "Rating submitted successfully", data)
		return
	}
	utils.ResponseSuccess(w, "Rating updated successfully", data)
}

// MyRatings handles GET /api/ratings/my-ratings
func (h *RatingHandler) MyRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.MyRatings(r.Context(), userID, parsePagination(r))
	if err != nil {
		respondServiceError(w, h.log, err, "list my ratings")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// StoreRatings handles GET /api/ratings/store/{storeId} (owner of the
// store, or admin)
func (h *RatingHandler) StoreRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	storeID, err := uuid.Parse(chi.URLParam(r, "storeId"))
	if err != nil {
		utils.ResponseNotFound(w, "Store not found")
		return
	}

	resp, err := h.service.StoreRatings(r.Context(), storeID, userID, entity.UserRole(role), parsePagination(r))
	if err != nil {
		respondServiceError(w, h.log, err, "list store ratings")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// MyStores handles GET /api/ratings/my-stores
func (h *RatingHandler) MyStores(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.MyStores(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "list my stores")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}
