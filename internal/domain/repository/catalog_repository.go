package repository

import (
	"context"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

// CatalogRepository persistencia de cines, salas y películas.
type CatalogRepository interface {
	// UpsertTheater reutiliza el cine con el mismo nombre y ciudad si ya existe. Completa ID.
	UpsertTheater(ctx context.Context, t *entity.Theater) error
	// UpsertScreen crea la sala o actualiza el aforo si (theater_id, name) ya existe. Completa ID.
	UpsertScreen(ctx context.Context, s *entity.Screen) error
	// UpsertMovie reutiliza la película con el mismo título y actualiza sus datos. Completa ID.
	UpsertMovie(ctx context.Context, m *entity.Movie) error
}
