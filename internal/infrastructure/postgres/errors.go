package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/cinema-booking/internal/domain"
)

// Códigos SQLSTATE de la clase 23 (integrity constraint violation).
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

// classifyError traduce las violaciones de restricción de PostgreSQL a *domain.ConstraintViolation.
// Cualquier otro error se devuelve sin cambios.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	var kind domain.ConstraintKind
	switch pgErr.Code {
	case sqlStateUnique:
		kind = domain.ConstraintUnique
	case sqlStateCheck:
		kind = domain.ConstraintCheck
	case sqlStateForeignKey:
		kind = domain.ConstraintForeignKey
	case sqlStateNotNull:
		kind = domain.ConstraintNotNull
	default:
		return err
	}
	return &domain.ConstraintViolation{
		Kind:       kind,
		Constraint: pgErr.ConstraintName,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Err:        err,
	}
}

// conflictOnUnique clasifica err y, si es una violación de unicidad, la marca además como
// domain.ErrConflict. La ConstraintViolation sigue accesible con errors.As.
func conflictOnUnique(err error) error {
	err = classifyError(err)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return err
}

// isUniqueViolation indica si err es una violación de unicidad (23505), cruda o ya clasificada.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateUnique
	}
	return domain.IsConstraintKind(err, domain.ConstraintUnique)
}
