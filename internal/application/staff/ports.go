package staff

import (
	"context"

	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción con los repos de personal y usuarios.
type TxRunner interface {
	RunStaff(ctx context.Context, fn func(
		memberRepo repository.TeamMemberRepository,
		userRepo repository.UserRepository,
	) error) error
}

// PasswordHasher genera el hash de la credencial inicial de la cuenta enlazada.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}
