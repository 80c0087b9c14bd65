package booking

import (
	"context"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos de reservas y pagos atados a ella.
type TxRunner interface {
	RunBooking(ctx context.Context, fn func(
		bookingRepo repository.BookingRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// TicketPDFGenerator genera el comprobante PDF de una reserva.
type TicketPDFGenerator interface {
	GenerateTicketPDF(
		ctx context.Context,
		ticket *entity.BookingTicket,
		seats []*entity.BookingSeat,
		payments []*entity.Payment,
	) ([]byte, error)
}
