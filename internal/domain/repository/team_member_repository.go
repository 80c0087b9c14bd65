package repository

import (
	"context"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

// TeamMemberRepository define el puerto de persistencia para TeamMember.
type TeamMemberRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.TeamMember, error)
	// GetEmailForUpdate bloquea la fila del miembro y devuelve su email actual; found=false si no existe.
	GetEmailForUpdate(ctx context.Context, id int64) (email string, found bool, err error)
	// Update reescribe los datos del miembro (por ID) y completa UpdatedAt.
	// Un email ya usado por otro miembro devuelve domain.ErrConflict.
	Update(ctx context.Context, member *entity.TeamMember) error
}
