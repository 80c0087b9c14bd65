package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// UpsertByEmail inserta el usuario o, si el email ya existe, actualiza nombre, teléfono y rol.
// password_hash no se pisa: una cuenta existente conserva su credencial.
func (r *UserRepo) UpsertByEmail(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name  = EXCLUDED.last_name,
		    phone      = EXCLUDED.phone,
		    role       = EXCLUDED.role,
		    updated_at = NOW()
		RETURNING id, password_hash, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.Email, u.Phone, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert user: %w", classifyError(err))
	}
	return nil
}

// UpdateByEmail sincroniza la cuenta enlazada a un miembro cuyo email pudo cambiar.
// No toca password_hash; lo devuelve en u junto con ID y timestamps.
func (r *UserRepo) UpdateByEmail(ctx context.Context, oldEmail string, u *entity.User) (bool, error) {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, phone = $4, role = $5, updated_at = NOW()
		WHERE email = $6
		RETURNING id, password_hash, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.Email, u.Phone, u.Role, oldEmail,
	).Scan(&u.ID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("update user by email: %w", conflictOnUnique(err))
	}
	return true, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1 LIMIT 1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}
