package postgres_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/cinema-booking/internal/infrastructure/postgres"
)

var errFakeUnsupported = errors.New("fake: not supported")

// fakeQuerier registra cada Exec. gate (si no es nil) bloquea Exec hasta cerrarse;
// failFirst hace fallar las primeras N ejecuciones.
type fakeQuerier struct {
	mu        sync.Mutex
	execs     []string
	gate      chan struct{}
	failFirst int
	failErr   error
	// rowErr, si no es nil, lo devuelven Query y el Scan de QueryRow.
	rowErr error
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.mu.Lock()
	f.execs = append(f.execs, sql)
	gate := f.gate
	fail := f.failFirst > 0
	if fail {
		f.failFirst--
	}
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return pgconn.CommandTag{}, ctx.Err()
		}
	}
	if fail {
		return pgconn.CommandTag{}, f.failErr
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if f.rowErr != nil {
		return nil, f.rowErr
	}
	return nil, errFakeUnsupported
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	if f.rowErr != nil {
		return errRow{f.rowErr}
	}
	return errRow{errFakeUnsupported}
}

func (f *fakeQuerier) execCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.execs)
}

// tablesCreated devuelve, en orden, las tablas de cada CREATE TABLE ejecutado.
func (f *fakeQuerier) tablesCreated() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, sql := range f.execs {
		for _, stmt := range strings.Split(sql, "CREATE TABLE IF NOT EXISTS ")[1:] {
			out = append(out, strings.Fields(stmt)[0])
		}
	}
	return out
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// fakeTx implementa pgx.Tx; los métodos no sobrescritos entran en pánico (interfaz embebida nil).
type fakeTx struct {
	pgx.Tx
	fakeQuerier

	commitErr   error
	rollbackErr error
	commits     int
	rollbacks   int
	rollbackCtx context.Context
	// rollbackCtxErr es ctx.Err() en el momento de la llamada; el runner cancela ctx al volver.
	rollbackCtxErr error
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.fakeQuerier.Exec(ctx, sql, args...)
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.fakeQuerier.Query(ctx, sql, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.fakeQuerier.QueryRow(ctx, sql, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	t.rollbackCtx = ctx
	t.rollbackCtxErr = ctx.Err()
	return t.rollbackErr
}

type fakeConn struct {
	fakeQuerier
	pool     *fakePool
	tx       *fakeTx
	beginErr error
}

func (c *fakeConn) Begin(context.Context) (pgx.Tx, error) {
	if c.beginErr != nil {
		return nil, c.beginErr
	}
	return c.tx, nil
}

func (c *fakeConn) Release() {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	c.pool.acquired--
	c.pool.released++
}

// fakePool entrega siempre la misma conexión y cuenta préstamos y devoluciones.
type fakePool struct {
	fakeQuerier
	mu         sync.Mutex
	conn       *fakeConn
	acquireErr error
	acquired   int
	released   int
}

func newFakePool() *fakePool {
	p := &fakePool{}
	p.conn = &fakeConn{pool: p, tx: &fakeTx{}}
	return p
}

var _ postgres.Pool = (*fakePool)(nil)

func (p *fakePool) Acquire(context.Context) (postgres.Conn, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquired++
	return p.conn, nil
}

func (p *fakePool) stats() (acquired, released int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquired, p.released
}
