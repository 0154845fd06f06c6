package adaptor

import (
	"net/http"

	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log.With(zap.String("handler", "store")),
	}
}

// ListStores handles GET /api/stores (public; viewer rating attached when
// a valid token rode along)
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	query := parseListQuery(r)

	var viewerID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	resp, err := h.service.ListStores(r.Context(), query, viewerID)
	if err != nil {
		respondServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetStore handles GET /api/stores/{id} (protected)
func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Store not found")
		return
	}

	resp, err := h.service.GetStoreDetail(r.Context(), storeID, userID)
	if err != nil {
		respondServiceError(w, h.log, err, "get store")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"store": resp})
}
