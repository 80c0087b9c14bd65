package entity

import "time"

// TeamRole rol de un miembro del equipo.
type TeamRole string

const (
	TeamRoleAdmin   TeamRole = "ADMIN"
	TeamRoleManager TeamRole = "MANAGER"
	TeamRoleStaff   TeamRole = "STAFF"
)

// Valid indica si el rol pertenece a la enumeración.
func (r TeamRole) Valid() bool {
	return r == TeamRoleAdmin || r == TeamRoleManager || r == TeamRoleStaff
}

// UserRole rol de la cuenta de usuario enlazada: ADMIN se conserva, el resto es STAFF.
func (r TeamRole) UserRole() UserRole {
	if r == TeamRoleAdmin {
		return UserRoleAdmin
	}
	return UserRoleStaff
}

// TeamMemberStatus estado laboral.
type TeamMemberStatus string

const (
	TeamMemberActive   TeamMemberStatus = "ACTIVE"
	TeamMemberInactive TeamMemberStatus = "INACTIVE"
	TeamMemberOnLeave  TeamMemberStatus = "ON_LEAVE"
)

// Valid indica si el estado pertenece a la enumeración.
func (s TeamMemberStatus) Valid() bool {
	return s == TeamMemberActive || s == TeamMemberInactive || s == TeamMemberOnLeave
}

// TeamMember miembro del personal de un cine. TheaterID es opcional.
type TeamMember struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Role       TeamRole
	Department *string
	Status     TeamMemberStatus
	TheaterID  *int64
	HiredAt    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
