package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier es la interfaz mínima compartida por *pgxpool.Pool, *pgxpool.Conn y pgx.Tx.
// Los repositorios la aceptan para que el mismo código funcione dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn es una conexión sacada del pool. Pertenece en exclusiva a quien la adquirió
// hasta que llama a Release.
type Conn interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Release()
}

// Pool es el contrato del pool de conexiones que consume la capa de datos.
type Pool interface {
	Querier
	// Acquire bloquea si el pool está agotado hasta obtener una conexión o cancelar ctx.
	Acquire(ctx context.Context) (Conn, error)
}

var _ Pool = (*PgxPool)(nil)

// PgxPool adapta *pgxpool.Pool al contrato Pool.
type PgxPool struct {
	*pgxpool.Pool
}

// WrapPool envuelve un pool de pgx.
func WrapPool(p *pgxpool.Pool) *PgxPool {
	return &PgxPool{Pool: p}
}

// Acquire saca una conexión del pool.
func (p *PgxPool) Acquire(ctx context.Context) (Conn, error) {
	c, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}
