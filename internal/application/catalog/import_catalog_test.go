package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cinema-booking/internal/application/catalog"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

type memCatalog struct {
	nextID   int64
	screens  []entity.Screen
	movies   []string
	movieErr error
}

func (m *memCatalog) UpsertTheater(_ context.Context, t *entity.Theater) error {
	m.nextID++
	t.ID = m.nextID
	return nil
}

func (m *memCatalog) UpsertScreen(_ context.Context, s *entity.Screen) error {
	m.nextID++
	s.ID = m.nextID
	m.screens = append(m.screens, *s)
	return nil
}

func (m *memCatalog) UpsertMovie(_ context.Context, mv *entity.Movie) error {
	if m.movieErr != nil {
		return m.movieErr
	}
	m.nextID++
	mv.ID = m.nextID
	m.movies = append(m.movies, mv.Title)
	return nil
}

type fakeTx struct{ repo *memCatalog }

func (f fakeTx) RunCatalog(_ context.Context, fn func(repository.CatalogRepository) error) error {
	return fn(f.repo)
}

func TestImport(t *testing.T) {
	repo := &memCatalog{}
	uc := catalog.NewImportCatalogUseCase(fakeTx{repo: repo})
	theaters := []*entity.Theater{{
		Name: "Centro", City: "Bogotá",
		Screens: []entity.Screen{{Name: "1", TotalSeats: 100}, {Name: "2", TotalSeats: 80}},
	}}
	movies := []*entity.Movie{{Title: "Metropolis", DurationMin: 153, Status: entity.MovieNowShowing}}

	res, err := uc.Import(context.Background(), theaters, movies)
	require.NoError(t, err)
	assert.Equal(t, catalog.ImportResult{Theaters: 1, Screens: 2, Movies: 1}, res)
	for _, s := range repo.screens {
		assert.Equal(t, theaters[0].ID, s.TheaterID)
	}
	assert.NotZero(t, movies[0].ID)
}

func TestImport_ErrorAbortaTodo(t *testing.T) {
	boom := errors.New("check violation")
	uc := catalog.NewImportCatalogUseCase(fakeTx{repo: &memCatalog{movieErr: boom}})

	res, err := uc.Import(context.Background(), nil, []*entity.Movie{{Title: "X"}})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, catalog.ImportResult{}, res)
}
