package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// UpsertTheater theaters no tiene clave natural única; se busca por (name, city) antes de insertar.
func (r *CatalogRepo) UpsertTheater(ctx context.Context, t *entity.Theater) error {
	err := r.q.QueryRow(ctx,
		`SELECT id FROM theaters WHERE name = $1 AND city = $2 ORDER BY id LIMIT 1`, t.Name, t.City,
	).Scan(&t.ID)
	if err == nil {
		_, err = r.q.Exec(ctx,
			`UPDATE theaters SET address = COALESCE($2, address), location = COALESCE($3, location), updated_at = NOW() WHERE id = $1`,
			t.ID, t.Address, t.Location)
		if err != nil {
			return fmt.Errorf("update theater: %w", classifyError(err))
		}
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("find theater: %w", err)
	}
	err = r.q.QueryRow(ctx,
		`INSERT INTO theaters (name, location, address, city) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Name, t.Location, t.Address, t.City,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert theater: %w", classifyError(err))
	}
	return nil
}

func (r *CatalogRepo) UpsertScreen(ctx context.Context, s *entity.Screen) error {
	query := `
		INSERT INTO screens (theater_id, name, total_seats)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT screens_theater_id_name_key DO UPDATE
		SET total_seats = EXCLUDED.total_seats, updated_at = NOW()
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.TheaterID, s.Name, s.TotalSeats).Scan(&s.ID); err != nil {
		return fmt.Errorf("upsert screen %q: %w", s.Name, classifyError(err))
	}
	return nil
}

// UpsertMovie movies tampoco tiene clave única; el título identifica la película en el catálogo.
func (r *CatalogRepo) UpsertMovie(ctx context.Context, m *entity.Movie) error {
	err := r.q.QueryRow(ctx,
		`SELECT id FROM movies WHERE title = $1 ORDER BY id LIMIT 1`, m.Title,
	).Scan(&m.ID)
	switch {
	case err == nil:
		_, err = r.q.Exec(ctx, `
			UPDATE movies
			SET description = $2, duration_min = $3, rating = $4, release_date = $5,
			    poster_url = $6, status = $7, updated_at = NOW()
			WHERE id = $1`,
			m.ID, m.Description, m.DurationMin, m.Rating, m.ReleaseDate, m.PosterURL, m.Status)
		if err != nil {
			return fmt.Errorf("update movie: %w", classifyError(err))
		}
		return nil
	case !errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("find movie: %w", err)
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO movies (title, description, duration_min, rating, release_date, poster_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		m.Title, m.Description, m.DurationMin, m.Rating, m.ReleaseDate, m.PosterURL, m.Status,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movie: %w", classifyError(err))
	}
	return nil
}
