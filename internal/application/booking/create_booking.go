package booking

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// SeatInput una butaca a reservar.
type SeatInput struct {
	Label string
	Price decimal.Decimal
}

// CreateBookingInput datos de la reserva. Status vacío equivale a CONFIRMED.
type CreateBookingInput struct {
	UserID      int64
	ShowtimeID  int64
	Status      entity.BookingStatus
	TotalAmount decimal.Decimal
	Seats       []SeatInput
}

// CreateBookingUseCase crea la cabecera y las butacas de una reserva como una unidad.
type CreateBookingUseCase struct {
	txRunner TxRunner
}

// NewCreateBookingUseCase construye el caso de uso.
func NewCreateBookingUseCase(txRunner TxRunner) *CreateBookingUseCase {
	return &CreateBookingUseCase{txRunner: txRunner}
}

// CreateBookingWithSeats inserta la reserva y una fila por butaca en una sola transacción.
// Si cualquier inserción falla (p. ej. butaca duplicada o showtime inexistente) no queda nada persistido.
// Una lista de butacas vacía es válida.
func (uc *CreateBookingUseCase) CreateBookingWithSeats(ctx context.Context, in CreateBookingInput) (int64, error) {
	status := in.Status
	if status == "" {
		status = entity.BookingStatusConfirmed
	}

	var bookingID int64
	err := uc.txRunner.RunBooking(ctx, func(bookingRepo repository.BookingRepository, _ repository.PaymentRepository) error {
		b := &entity.Booking{
			UserID:      in.UserID,
			ShowtimeID:  in.ShowtimeID,
			Status:      status,
			TotalAmount: in.TotalAmount,
		}
		if err := bookingRepo.Create(ctx, b); err != nil {
			return err
		}
		for _, s := range in.Seats {
			seat := &entity.BookingSeat{BookingID: b.ID, SeatLabel: s.Label, Price: s.Price}
			if err := bookingRepo.CreateSeat(ctx, seat); err != nil {
				return err
			}
		}
		bookingID = b.ID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}
	return bookingID, nil
}
