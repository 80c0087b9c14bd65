package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción con el repo de catálogo atado a ella.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(catalogRepo repository.CatalogRepository) error) error
}

// ImportResult conteos de lo persistido.
type ImportResult struct {
	Theaters int
	Screens  int
	Movies   int
}

// ImportCatalogUseCase carga cines, salas y películas en una sola transacción.
// Reimportar el mismo catálogo actualiza las filas existentes en lugar de duplicarlas.
type ImportCatalogUseCase struct {
	txRunner TxRunner
}

func NewImportCatalogUseCase(txRunner TxRunner) *ImportCatalogUseCase {
	return &ImportCatalogUseCase{txRunner: txRunner}
}

func (uc *ImportCatalogUseCase) Import(ctx context.Context, theaters []*entity.Theater, movies []*entity.Movie) (ImportResult, error) {
	var res ImportResult
	err := uc.txRunner.RunCatalog(ctx, func(repo repository.CatalogRepository) error {
		res = ImportResult{}
		for _, t := range theaters {
			if err := repo.UpsertTheater(ctx, t); err != nil {
				return err
			}
			res.Theaters++
			for i := range t.Screens {
				s := &t.Screens[i]
				s.TheaterID = t.ID
				if err := repo.UpsertScreen(ctx, s); err != nil {
					return err
				}
				res.Screens++
			}
		}
		for _, m := range movies {
			if err := repo.UpsertMovie(ctx, m); err != nil {
				return err
			}
			res.Movies++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("import catalog: %w", err)
	}
	return res, nil
}
