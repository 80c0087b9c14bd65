package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// SummaryUseCase agrega los ingresos cobrados (pagos PAID).
type SummaryUseCase struct {
	payments repository.PaymentRepository
}

func NewSummaryUseCase(payments repository.PaymentRepository) *SummaryUseCase {
	return &SummaryUseCase{payments: payments}
}

// PaidSummary devuelve conteo y total de pagos PAID en [from, to). Límites nil = sin límite.
func (uc *SummaryUseCase) PaidSummary(ctx context.Context, from, to *time.Time) (entity.PaymentSummary, error) {
	if from != nil && to != nil && !to.After(*from) {
		return entity.PaymentSummary{}, fmt.Errorf("summary range: %w", domain.ErrInvalidInput)
	}
	return uc.payments.SumPaid(ctx, from, to)
}
