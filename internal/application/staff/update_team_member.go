package staff

import (
	"context"
	"fmt"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// UpdateTeamMemberUseCase edita un miembro y mantiene sincronizada su cuenta de usuario,
// incluido el cambio de email.
type UpdateTeamMemberUseCase struct {
	txRunner        TxRunner
	hasher          PasswordHasher
	defaultPassword string
}

func NewUpdateTeamMemberUseCase(txRunner TxRunner, hasher PasswordHasher, defaultPassword string) *UpdateTeamMemberUseCase {
	return &UpdateTeamMemberUseCase{txRunner: txRunner, hasher: hasher, defaultPassword: defaultPassword}
}

// Update en una transacción: bloquea el miembro y lee su email actual, reescribe sus datos y
// actualiza la cuenta que tenía el email anterior. Si esa cuenta no existe se crea (o se
// completa la que ya tenga el email nuevo) con la credencial por defecto.
// Devuelve domain.ErrNotFound si el miembro no existe.
func (uc *UpdateTeamMemberUseCase) Update(ctx context.Context, id int64, in TeamMemberInput) (*entity.TeamMember, error) {
	member, err := in.toMember()
	if err != nil {
		return nil, err
	}
	member.ID = id

	err = uc.txRunner.RunStaff(ctx, func(memberRepo repository.TeamMemberRepository, userRepo repository.UserRepository) error {
		oldEmail, found, err := memberRepo.GetEmailForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrNotFound
		}
		if err := memberRepo.Update(ctx, member); err != nil {
			return err
		}

		user := linkedUser(member)
		updated, err := userRepo.UpdateByEmail(ctx, oldEmail, user)
		if err != nil || updated {
			return err
		}
		hash, err := uc.hasher.Hash(uc.defaultPassword)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		return userRepo.UpsertByEmail(ctx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("update team member %d: %w", id, err)
	}
	return member, nil
}
