package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)

// ConstraintKind tipo de restricción de la base de datos que rechazó una escritura.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintNotNull    ConstraintKind = "not_null"
)

// ConstraintViolation representa una violación de restricción independiente del motor.
// Constraint es el nombre de la restricción (ej. payments_transaction_ref_key); Err conserva
// el error original del driver.
type ConstraintViolation struct {
	Kind       ConstraintKind
	Constraint string
	Table      string
	Column     string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("%s constraint violation on %s: %v", e.Kind, e.Table, e.Err)
	}
	return fmt.Sprintf("%s constraint %q violated: %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// IsConstraint indica si err contiene una violación de la restricción indicada.
func IsConstraint(err error, constraint string) bool {
	var cv *ConstraintViolation
	if !errors.As(err, &cv) {
		return false
	}
	return cv.Constraint == constraint
}

// IsConstraintKind indica si err contiene una violación del tipo indicado.
func IsConstraintKind(err error, kind ConstraintKind) bool {
	var cv *ConstraintViolation
	if !errors.As(err, &cv) {
		return false
	}
	return cv.Kind == kind
}
