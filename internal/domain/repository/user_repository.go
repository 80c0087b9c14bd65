package repository

import (
	"context"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// UpsertByEmail inserta o actualiza (nombre, teléfono, rol) por email y completa ID.
	// El hash de contraseña solo se escribe en la inserción.
	UpsertByEmail(ctx context.Context, user *entity.User) error
	// UpdateByEmail actualiza nombre, email, teléfono y rol de la cuenta con oldEmail.
	// updated=false si no hay cuenta con ese email. Un email nuevo ya tomado devuelve domain.ErrConflict.
	UpdateByEmail(ctx context.Context, oldEmail string, user *entity.User) (updated bool, err error)
	// GetByEmail devuelve nil, nil si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
