package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cinema-booking/internal/application/booking"
	"github.com/jhoicas/cinema-booking/internal/application/catalog"
	"github.com/jhoicas/cinema-booking/internal/application/payment"
	"github.com/jhoicas/cinema-booking/internal/application/staff"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de la capa de aplicación.
var _ booking.TxRunner = (*TxRunner)(nil)
var _ payment.TxRunner = (*TxRunner)(nil)
var _ staff.TxRunner = (*TxRunner)(nil)
var _ catalog.TxRunner = (*TxRunner)(nil)

const defaultRollbackTimeout = 5 * time.Second

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL sobre una conexión
// dedicada del pool. La conexión vuelve al pool en todos los caminos de salida.
type TxRunner struct {
	pool            Pool
	log             zerolog.Logger
	rollbackTimeout time.Duration
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool Pool, log zerolog.Logger) *TxRunner {
	return &TxRunner{pool: pool, log: log, rollbackTimeout: defaultRollbackTimeout}
}

// WithTransaction adquiere una conexión, abre BEGIN, ejecuta fn y hace COMMIT.
// Si fn o el commit fallan (o fn entra en pánico) se hace ROLLBACK y se devuelve el error de fn;
// un fallo del rollback se une al original con errors.Join.
func (r *TxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context, q Querier) error) (err error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := r.rollback(ctx, tx); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

// rollback no hereda la cancelación del llamador: un timeout del request no debe dejar
// la conexión con una transacción abierta.
func (r *TxRunner) rollback(ctx context.Context, tx pgx.Tx) error {
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.rollbackTimeout)
	defer cancel()

	err := tx.Rollback(rbCtx)
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	r.log.Warn().Err(err).Msg("rollback failed")
	return fmt.Errorf("rollback transaction: %w", err)
}

// InTx ejecuta fn en una transacción y devuelve su resultado si hubo commit.
func InTx[T any](ctx context.Context, r *TxRunner, fn func(ctx context.Context, q Querier) (T, error)) (T, error) {
	var out T
	err := r.WithTransaction(ctx, func(ctx context.Context, q Querier) error {
		v, err := fn(ctx, q)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// RunBooking inicia una transacción con los repos de reservas y pagos atados a la tx.
func (r *TxRunner) RunBooking(ctx context.Context, fn func(
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return r.WithTransaction(ctx, func(ctx context.Context, q Querier) error {
		return fn(NewBookingRepository(q), NewPaymentRepository(q))
	})
}

// RunStaff inicia una transacción con los repos de personal y usuarios (alta de miembros).
func (r *TxRunner) RunStaff(ctx context.Context, fn func(
	memberRepo repository.TeamMemberRepository,
	userRepo repository.UserRepository,
) error) error {
	return r.WithTransaction(ctx, func(ctx context.Context, q Querier) error {
		return fn(NewTeamMemberRepository(q), NewUserRepository(q))
	})
}

// RunCatalog inicia una transacción con el repo de catálogo (importación de cines y películas).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(catalogRepo repository.CatalogRepository) error) error {
	return r.WithTransaction(ctx, func(ctx context.Context, q Querier) error {
		return fn(NewCatalogRepository(q))
	})
}
