package request

// CreateStoreRequest is the admin store-creation payload. OwnerID may be
// empty; when set it must reference an existing store_owner user.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
	OwnerID string `json:"owner_id" validate:"omitempty,uuid"`
}
