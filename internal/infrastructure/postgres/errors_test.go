package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cinema-booking/internal/domain"
)

func TestClassifyError_Unique(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "payments_transaction_ref_key",
		TableName:      "payments",
		Message:        "duplicate key value violates unique constraint",
	}
	err := classifyError(fmt.Errorf("exec: %w", pgErr))

	var cv *domain.ConstraintViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, domain.ConstraintUnique, cv.Kind)
	assert.Equal(t, "payments_transaction_ref_key", cv.Constraint)
	assert.Equal(t, "payments", cv.Table)
	assert.ErrorIs(t, err, pgErr, "el PgError original debe seguir accesible")
}

func TestClassifyError_Kinds(t *testing.T) {
	cases := map[string]domain.ConstraintKind{
		"23502": domain.ConstraintNotNull,
		"23503": domain.ConstraintForeignKey,
		"23514": domain.ConstraintCheck,
	}
	for code, kind := range cases {
		err := classifyError(&pgconn.PgError{Code: code, ConstraintName: "c_" + code})
		assert.True(t, domain.IsConstraintKind(err, kind), "código %s", code)
		assert.True(t, domain.IsConstraint(err, "c_"+code))
	}
}

func TestClassifyError_OtrosErroresSinCambios(t *testing.T) {
	plain := errors.New("connection reset by peer")
	assert.Same(t, plain, classifyError(plain))

	deadlock := &pgconn.PgError{Code: "40P01"}
	assert.Same(t, error(deadlock), classifyError(deadlock))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(&domain.ConstraintViolation{Kind: domain.ConstraintUnique, Err: errors.New("x")}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isUniqueViolation(errors.New("23505 in text is not enough")))
}

func TestConflictOnUnique(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "team_members_email_key", TableName: "team_members"}
	err := conflictOnUnique(dup)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, domain.IsConstraint(err, "team_members_email_key"))
	assert.ErrorIs(t, err, dup)

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "team_members_theater_id_fkey"}
	err = conflictOnUnique(fk)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.True(t, domain.IsConstraintKind(err, domain.ConstraintForeignKey))

	plain := errors.New("conn closed")
	assert.Same(t, plain, conflictOnUnique(plain))
}
