package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, booking_id, method, amount, status, paid_at, transaction_ref, created_at`

// Create inserta el pago. paid_at se fija con NOW() del servidor cuando el estado es PAID.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (booking_id, method, amount, status, paid_at, transaction_ref)
		VALUES ($1, $2, $3, $4::text, CASE WHEN $4::text = 'PAID' THEN NOW() ELSE NULL END, $5)
		RETURNING id, paid_at, created_at`
	err := r.q.QueryRow(ctx, query, p.BookingID, p.Method, p.Amount, p.Status, p.TransactionRef).
		Scan(&p.ID, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", classifyError(err))
	}
	return nil
}

// GetByTransactionRef busca un pago por su referencia externa.
func (r *PaymentRepo) GetByTransactionRef(ctx context.Context, ref string) (*entity.Payment, error) {
	p, err := scanPayment(r.q.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE transaction_ref = $1 LIMIT 1`, ref))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by ref: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene y bloquea la fila hasta el fin de la transacción.
func (r *PaymentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Payment, error) {
	p, err := scanPayment(r.q.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment for update: %w", err)
	}
	return p, nil
}

// UpdateStatus cambia el estado; al pasar a PAID fija paid_at si aún no tenía valor.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, id int64, status entity.PaymentStatus) error {
	query := `
		UPDATE payments
		SET status  = $2::text,
		    paid_at = CASE WHEN $2::text = 'PAID' THEN COALESCE(paid_at, NOW()) ELSE paid_at END
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", classifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByBooking lista los pagos de una reserva, del más antiguo al más reciente.
func (r *PaymentRepo) ListByBooking(ctx context.Context, bookingID int64) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE booking_id = $1 ORDER BY created_at, id`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SumPaid cuenta y suma los pagos PAID con paid_at en [from, to).
func (r *PaymentRepo) SumPaid(ctx context.Context, from, to *time.Time) (entity.PaymentSummary, error) {
	query := `
		SELECT COUNT(*)::int, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'PAID'
		  AND ($1::timestamptz IS NULL OR paid_at >= $1)
		  AND ($2::timestamptz IS NULL OR paid_at < $2)`
	var s entity.PaymentSummary
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&s.PaidCount, &s.PaidTotal); err != nil {
		return entity.PaymentSummary{}, fmt.Errorf("sum paid payments: %w", err)
	}
	return s, nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.BookingID, &p.Method, &p.Amount, &p.Status,
		&p.PaidAt, &p.TransactionRef, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
