package adaptor

import (
	"encoding/json"
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler serves the /api/admin surface. Every route behind it is
// already gated by the admin role middleware.
type AdminHandler struct {
	users  usecase.UserService
	stores usecase.StoreService
	log    *zap.Logger
}

func NewAdminHandler(users usecase.UserService, stores usecase.StoreService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		users:  users,
		stores: stores,
		log:    log.With(zap.String("handler", "admin")),
	}
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.Dashboard(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// CreateUser handles POST /api/admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.users.CreateUser(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", map[string]any{"user": resp})
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.ListUsers(r.Context(), parseListQuery(r))
	if err != nil {
		respondServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetUser handles GET /api/admin/users/{id}
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "User not found")
		return
	}

	resp, err := h.users.GetUserDetail(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"user": resp})
}

// CreateStore handles POST /api/admin/stores
func (h *AdminHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.stores.CreateStore(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create store")
		return
	}

	utils.ResponseCreated(w, "Store created successfully", map[string]any{"store": resp})
}

// ListStores handles GET /api/admin/stores. Same listing as the public
// surface, without the viewer-rating column.
func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	resp, err := h.stores.ListStores(r.Context(), parseListQuery(r), nil)
	if err != nil {
		respondServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}
