// seed_catalog carga en la base de datos el catálogo de cines, salas y películas
// a partir del XML del distribuidor (UTF-8, ISO-8859-1 o Windows-1252).
//
// Uso: go run ./cmd/seed_catalog [ruta/catalog.xml]
// Por defecto busca catalog.xml en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appcatalog "github.com/jhoicas/cinema-booking/internal/application/catalog"
	"github.com/jhoicas/cinema-booking/internal/infrastructure/catalogxml"
	"github.com/jhoicas/cinema-booking/internal/infrastructure/postgres"
	"github.com/jhoicas/cinema-booking/pkg/config"
	"github.com/jhoicas/cinema-booking/pkg/logger"
)

func main() {
	xmlPath := "catalog.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	parsed, err := catalogxml.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store := postgres.NewStore(postgres.WrapPool(pool), log)
	if err := store.Schema.EnsureScreens(ctx); err != nil {
		log.Fatal().Err(err).Msg("esquema de salas")
	}
	if err := store.Schema.EnsureMovies(ctx); err != nil {
		log.Fatal().Err(err).Msg("esquema de películas")
	}

	res, err := appcatalog.NewImportCatalogUseCase(store.Tx).Import(ctx, parsed.Theaters, parsed.Movies)
	if err != nil {
		log.Fatal().Err(err).Msg("importar catálogo")
	}
	log.Info().
		Str("file", xmlPath).
		Int("theaters", res.Theaters).
		Int("screens", res.Screens).
		Int("movies", res.Movies).
		Msg("catálogo importado")
}
