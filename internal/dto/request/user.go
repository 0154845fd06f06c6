package request

// CreateUserRequest is the admin user-creation payload. Unlike public
// registration the role is selectable; it defaults to "user" when omitted.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,userpassword"`
	Address  string `json:"address" validate:"required,max=400"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user store_owner"`
}
