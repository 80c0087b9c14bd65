package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus estado de una reserva.
type BookingStatus string

// Estados válidos de Booking (CHECK en la tabla bookings).
const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusRefunded  BookingStatus = "REFUNDED"
)

// Valid indica si el estado pertenece a la enumeración.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusRefunded:
		return true
	}
	return false
}

// BookingSeatUniqueConstraint nombre de la restricción (booking_id, seat_label).
const BookingSeatUniqueConstraint = "booking_seats_booking_id_seat_label_key"

// Booking representa la cabecera de una reserva de un usuario para una función.
type Booking struct {
	ID          int64
	UserID      int64
	ShowtimeID  int64
	Status      BookingStatus
	TotalAmount decimal.Decimal
	BookedAt    time.Time
}

// BookingSeat una butaca dentro de una reserva. Pertenece exclusivamente a su Booking.
type BookingSeat struct {
	ID        int64
	BookingID int64
	SeatLabel string
	Price     decimal.Decimal
	CreatedAt time.Time
}

// BookingTicket vista de lectura de una reserva con los datos de la función, para el comprobante.
type BookingTicket struct {
	Booking       Booking
	CustomerName  string
	CustomerEmail string
	MovieTitle    string
	TheaterName   string
	TheaterCity   string
	ScreenName    string
	StartTime     time.Time
	EndTime       time.Time
}
