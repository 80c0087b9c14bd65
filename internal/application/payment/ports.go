package payment

import (
	"context"

	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos de reservas y pagos atados a ella.
type TxRunner interface {
	RunBooking(ctx context.Context, fn func(
		bookingRepo repository.BookingRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
