package staff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// TeamMemberInput datos de alta o edición. Role y Status vacíos toman STAFF y ACTIVE.
type TeamMemberInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Role       entity.TeamRole
	Department string
	Status     entity.TeamMemberStatus
	TheaterID  *int64
	HiredAt    *time.Time
}

// toMember normaliza la entrada: email en minúsculas y sin espacios, opcionales vacíos a nil.
func (in TeamMemberInput) toMember() (*entity.TeamMember, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	if email == "" || firstName == "" || lastName == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.TeamRoleStaff
	}
	status := in.Status
	if status == "" {
		status = entity.TeamMemberActive
	}
	return &entity.TeamMember{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      optional(in.Phone),
		Role:       role,
		Department: optional(in.Department),
		Status:     status,
		TheaterID:  in.TheaterID,
		HiredAt:    in.HiredAt,
	}, nil
}

// linkedUser cuenta de usuario que acompaña al miembro.
func linkedUser(m *entity.TeamMember) *entity.User {
	return &entity.User{
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role.UserRole(),
	}
}

// CreateTeamMemberUseCase da de alta un miembro del equipo junto con su cuenta de usuario.
type CreateTeamMemberUseCase struct {
	txRunner        TxRunner
	hasher          PasswordHasher
	defaultPassword string
}

// NewCreateTeamMemberUseCase construye el caso de uso. defaultPassword es la credencial
// inicial de las cuentas nuevas (STAFF_DEFAULT_PASSWORD).
func NewCreateTeamMemberUseCase(txRunner TxRunner, hasher PasswordHasher, defaultPassword string) *CreateTeamMemberUseCase {
	return &CreateTeamMemberUseCase{txRunner: txRunner, hasher: hasher, defaultPassword: defaultPassword}
}

// Create inserta el miembro y hace upsert del usuario con el mismo email en una transacción.
// Si el email ya pertenece a una cuenta se actualizan nombre, teléfono y rol pero no la contraseña.
func (uc *CreateTeamMemberUseCase) Create(ctx context.Context, in TeamMemberInput) (*entity.TeamMember, error) {
	member, err := in.toMember()
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(uc.defaultPassword)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunStaff(ctx, func(memberRepo repository.TeamMemberRepository, userRepo repository.UserRepository) error {
		if err := memberRepo.Create(ctx, member); err != nil {
			return err
		}
		user := linkedUser(member)
		user.PasswordHash = hash
		return userRepo.UpsertByEmail(ctx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return member, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
