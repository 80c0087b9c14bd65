package entity

import "time"

// UserRole rol de una cuenta de usuario.
type UserRole string

// Roles válidos para User.
const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleStaff    UserRole = "STAFF"
	UserRoleAdmin    UserRole = "ADMIN"
)

// User representa una cuenta del sistema (cliente o personal).
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
