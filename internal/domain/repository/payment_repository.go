package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	// Create inserta el pago y completa ID, PaidAt y CreatedAt. Las violaciones de restricción
	// se devuelven como *domain.ConstraintViolation.
	Create(ctx context.Context, payment *entity.Payment) error
	// GetByTransactionRef devuelve nil, nil si no hay pago con esa referencia.
	GetByTransactionRef(ctx context.Context, ref string) (*entity.Payment, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro de una tx.
	GetForUpdate(ctx context.Context, id int64) (*entity.Payment, error)
	// UpdateStatus devuelve domain.ErrNotFound si no se afectó ninguna fila.
	UpdateStatus(ctx context.Context, id int64, status entity.PaymentStatus) error
	ListByBooking(ctx context.Context, bookingID int64) ([]*entity.Payment, error)
	// SumPaid agrega los pagos PAID con paid_at en [from, to); límites nil = sin límite.
	SumPaid(ctx context.Context, from, to *time.Time) (entity.PaymentSummary, error)
}
