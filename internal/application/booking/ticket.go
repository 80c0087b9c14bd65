package booking

import (
	"context"
	"fmt"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// TicketUseCase arma el comprobante de una reserva (datos de la función, butacas y pagos).
type TicketUseCase struct {
	bookings repository.BookingRepository
	payments repository.PaymentRepository
	pdf      TicketPDFGenerator
}

func NewTicketUseCase(bookings repository.BookingRepository, payments repository.PaymentRepository, pdf TicketPDFGenerator) *TicketUseCase {
	return &TicketUseCase{bookings: bookings, payments: payments, pdf: pdf}
}

// TicketPDF devuelve el PDF del comprobante o domain.ErrNotFound si la reserva no existe.
func (uc *TicketUseCase) TicketPDF(ctx context.Context, bookingID int64) ([]byte, error) {
	ticket, err := uc.bookings.GetTicket(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	seats, err := uc.bookings.ListSeats(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	doc, err := uc.pdf.GenerateTicketPDF(ctx, ticket, seats, payments)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", bookingID, err)
	}
	return doc, nil
}
