package repository

import (
	"context"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

// BookingRepository define el puerto de persistencia para Booking y sus butacas.
// Las implementaciones aceptan pool o tx, de modo que Create + CreateSeat dentro de
// TxRunner.RunBooking quedan visibles como una unidad.
type BookingRepository interface {
	// Create inserta la cabecera y completa ID y BookedAt generados por la BD.
	Create(ctx context.Context, booking *entity.Booking) error
	CreateSeat(ctx context.Context, seat *entity.BookingSeat) error
	// GetByID devuelve nil, nil si la reserva no existe.
	GetByID(ctx context.Context, id int64) (*entity.Booking, error)
	ListSeats(ctx context.Context, bookingID int64) ([]*entity.BookingSeat, error)
	CountSeats(ctx context.Context, bookingID int64) (int, error)
	// GetTicket une la reserva con usuario, función, película, sala y cine. nil, nil si no existe.
	GetTicket(ctx context.Context, id int64) (*entity.BookingTicket, error)
}
