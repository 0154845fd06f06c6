package usecase

import "errors"

// Failure classes services report to the HTTP layer. Handlers map these
// onto status codes; anything else becomes a generic 500.
var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrStoreEmailTaken    = errors.New("store already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrOwnerRoleRequired  = errors.New("owner must have store_owner role")
	ErrStoreAccessDenied  = errors.New("store not found or access denied")
)
