package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación de BookingRepository (usable con pool o tx).
type BookingRepo struct {
	q Querier
}

// NewBookingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

// Create persiste la cabecera de la reserva y completa ID y BookedAt.
func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (user_id, showtime_id, status, total_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, booked_at`
	err := r.q.QueryRow(ctx, query, b.UserID, b.ShowtimeID, b.Status, b.TotalAmount).
		Scan(&b.ID, &b.BookedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", classifyError(err))
	}
	return nil
}

// CreateSeat persiste una butaca de la reserva.
func (r *BookingRepo) CreateSeat(ctx context.Context, s *entity.BookingSeat) error {
	query := `
		INSERT INTO booking_seats (booking_id, seat_label, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, s.BookingID, s.SeatLabel, s.Price).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking seat %q: %w", s.SeatLabel, classifyError(err))
	}
	return nil
}

// GetByID obtiene la cabecera de una reserva.
func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, showtime_id, status, total_amount, booked_at
		FROM bookings WHERE id = $1`
	var b entity.Booking
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.ShowtimeID, &b.Status, &b.TotalAmount, &b.BookedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

// ListSeats lista las butacas de una reserva ordenadas por etiqueta.
func (r *BookingRepo) ListSeats(ctx context.Context, bookingID int64) ([]*entity.BookingSeat, error) {
	query := `
		SELECT id, booking_id, seat_label, price, created_at
		FROM booking_seats WHERE booking_id = $1 ORDER BY seat_label`
	rows, err := r.q.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking seats: %w", err)
	}
	defer rows.Close()
	var list []*entity.BookingSeat
	for rows.Next() {
		var s entity.BookingSeat
		if err := rows.Scan(&s.ID, &s.BookingID, &s.SeatLabel, &s.Price, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking seat: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *BookingRepo) CountSeats(ctx context.Context, bookingID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*)::int FROM booking_seats WHERE booking_id = $1`, bookingID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count booking seats: %w", err)
	}
	return n, nil
}

func (r *BookingRepo) GetTicket(ctx context.Context, id int64) (*entity.BookingTicket, error) {
	query := `
		SELECT b.id, b.user_id, b.showtime_id, b.status, b.total_amount, b.booked_at,
		       u.first_name || ' ' || u.last_name, u.email,
		       m.title, th.name, th.city, sc.name, st.start_time, st.end_time
		FROM bookings b
		JOIN users u      ON u.id = b.user_id
		JOIN showtimes st ON st.id = b.showtime_id
		JOIN movies m     ON m.id = st.movie_id
		JOIN screens sc   ON sc.id = st.screen_id
		JOIN theaters th  ON th.id = sc.theater_id
		WHERE b.id = $1`
	var t entity.BookingTicket
	b := &t.Booking
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.ShowtimeID, &b.Status, &b.TotalAmount, &b.BookedAt,
		&t.CustomerName, &t.CustomerEmail,
		&t.MovieTitle, &t.TheaterName, &t.TheaterCity, &t.ScreenName, &t.StartTime, &t.EndTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking ticket: %w", err)
	}
	return &t, nil
}
