package entity

import "time"

// Role rol de un usuario del sistema.
type Role string

// Roles válidos para User.
const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleUser   Role = "user"
)

// ParseRole convierte el claim o la columna en Role. ok es false para valores desconocidos.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSeller, RoleUser:
		return Role(s), true
	default:
		return "", false
	}
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	Name         string
	Role         Role
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
