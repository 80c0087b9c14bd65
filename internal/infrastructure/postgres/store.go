package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/cinema-booking/pkg/logger"
)

var _ Querier = (*Store)(nil)

// Store agrupa el pool con el registro de esquema y el coordinador de transacciones.
// Es el punto de entrada de la capa de datos; se construye una vez en main.
type Store struct {
	pool   Pool
	Schema *SchemaRegistry
	Tx     *TxRunner
}

// NewStore construye la fachada sobre un pool ya abierto.
func NewStore(pool Pool, log *logger.Logger) *Store {
	return &Store{
		pool:   pool,
		Schema: NewSchemaRegistry(pool, log.Component("schema")),
		Tx:     NewTxRunner(pool, log.Component("tx")),
	}
}

// Exec ejecuta una sentencia fuera de transacción (conexión prestada y devuelta por el pool).
func (s *Store) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return tag, classifyError(err)
	}
	return tag, nil
}

// Query y QueryRow clasifican igual que Exec; en QueryRow el error llega en Scan
// y en Query puede llegar en rows.Err() (INSERT ... RETURNING).
func (s *Store) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, classifyError(err)
	}
	return classifiedRows{Rows: rows}, nil
}

func (s *Store) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return classifiedRow{row: s.pool.QueryRow(ctx, sql, args...)}
}

type classifiedRow struct {
	row pgx.Row
}

func (r classifiedRow) Scan(dest ...any) error {
	return classifyError(r.row.Scan(dest...))
}

type classifiedRows struct {
	pgx.Rows
}

func (r classifiedRows) Err() error {
	return classifyError(r.Rows.Err())
}

// Bookings devuelve el repositorio de reservas fuera de transacción.
func (s *Store) Bookings() *BookingRepo { return NewBookingRepository(s.pool) }

// Payments devuelve el repositorio de pagos fuera de transacción.
func (s *Store) Payments() *PaymentRepo { return NewPaymentRepository(s.pool) }

func (s *Store) TeamMembers() *TeamMemberRepo { return NewTeamMemberRepository(s.pool) }

func (s *Store) Users() *UserRepo { return NewUserRepository(s.pool) }
