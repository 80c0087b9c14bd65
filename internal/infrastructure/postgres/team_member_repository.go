package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

var _ repository.TeamMemberRepository = (*TeamMemberRepo)(nil)

// TeamMemberRepo implementación de TeamMemberRepository (usable con pool o tx).
type TeamMemberRepo struct {
	q Querier
}

func NewTeamMemberRepository(q Querier) *TeamMemberRepo {
	return &TeamMemberRepo{q: q}
}

// Create persiste el miembro y completa ID y timestamps.
func (r *TeamMemberRepo) Create(ctx context.Context, m *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (first_name, last_name, email, phone, role, department, status, theater_id, hired_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		m.FirstName, m.LastName, m.Email, m.Phone, m.Role, m.Department, m.Status, m.TheaterID, m.HiredAt,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert team member: %w", conflictOnUnique(err))
	}
	return nil
}

// GetByID obtiene un miembro del equipo por ID.
func (r *TeamMemberRepo) GetByID(ctx context.Context, id int64) (*entity.TeamMember, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, role, department, status, theater_id, hired_at,
		       created_at, updated_at
		FROM team_members WHERE id = $1`
	var m entity.TeamMember
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Role, &m.Department, &m.Status,
		&m.TheaterID, &m.HiredAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}

func (r *TeamMemberRepo) GetEmailForUpdate(ctx context.Context, id int64) (string, bool, error) {
	var email string
	err := r.q.QueryRow(ctx, `SELECT email FROM team_members WHERE id = $1 FOR UPDATE`, id).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lock team member: %w", err)
	}
	return email, true, nil
}

// Update reescribe todos los campos editables; sin fila devuelve domain.ErrNotFound.
func (r *TeamMemberRepo) Update(ctx context.Context, m *entity.TeamMember) error {
	query := `
		UPDATE team_members
		SET first_name = $1, last_name = $2, email = $3, phone = $4, role = $5, department = $6,
		    status = $7, theater_id = $8, hired_at = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		m.FirstName, m.LastName, m.Email, m.Phone, m.Role, m.Department, m.Status, m.TheaterID, m.HiredAt, m.ID,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update team member: %w", conflictOnUnique(err))
	}
	return nil
}
