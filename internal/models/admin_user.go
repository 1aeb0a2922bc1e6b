package models

import "time"

// Panel operator roles.
const (
	AdminRoleAdmin   = "admin"
	AdminRoleManager = "manager"
)

// AdminUser is a panel operator account in the central schema. Unrelated to
// tenant users.
type AdminUser struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Secret    string    `json:"-"` // bcrypt hash, never serialized
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidAdminRole reports whether role is one of the accepted operator roles.
func ValidAdminRole(role string) bool {
	return role == AdminRoleAdmin || role == AdminRoleManager
}

// CreateAdminUserRequest is the body of POST /api/usuarios.
type CreateAdminUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Secret string `json:"secret"`
	Role   string `json:"role"`
}

// UpdateAdminUserRequest is the body of PUT /api/usuarios. Secret is
// re-hashed only when supplied.
type UpdateAdminUserRequest struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Secret string `json:"secret"`
	Role   string `json:"role"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}
