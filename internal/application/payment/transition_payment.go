package payment

import (
	"context"
	"fmt"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// TransitionPaymentUseCase mueve un pago por su máquina de estados dentro de una transacción.
type TransitionPaymentUseCase struct {
	txRunner TxRunner
}

func NewTransitionPaymentUseCase(txRunner TxRunner) *TransitionPaymentUseCase {
	return &TransitionPaymentUseCase{txRunner: txRunner}
}

// Transition bloquea el pago, valida PENDING -> PAID|FAILED o PAID -> REFUNDED y lo actualiza.
// Devuelve el pago con el estado nuevo.
func (uc *TransitionPaymentUseCase) Transition(ctx context.Context, id int64, to entity.PaymentStatus) (*entity.Payment, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("payment status %q: %w", to, domain.ErrInvalidInput)
	}

	var out *entity.Payment
	err := uc.txRunner.RunBooking(ctx, func(_ repository.BookingRepository, payments repository.PaymentRepository) error {
		p, err := payments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if !p.Status.CanTransitionTo(to) {
			return fmt.Errorf("payment %d %s -> %s: %w", id, p.Status, to, domain.ErrInvalidTransition)
		}
		if err := payments.UpdateStatus(ctx, id, to); err != nil {
			return err
		}
		out, err = payments.GetForUpdate(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
