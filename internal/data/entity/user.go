package entity

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleUser       UserRole = "user"
	RoleStoreOwner UserRole = "store_owner"
)

// ValidRole reports whether s names one of the three platform roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return true
	}
	return false
}

type User struct {
	BaseSimple
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Address      string   `db:"address"`
	Role         UserRole `db:"role"`
}
