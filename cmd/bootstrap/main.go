// bootstrap crea las tablas de la plataforma (todas o los grupos indicados) y termina.
//
// Uso: go run ./cmd/bootstrap [grupo...]
// Ejemplo: go run ./cmd/bootstrap bookings team_members
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/cinema-booking/internal/infrastructure/postgres"
	"github.com/jhoicas/cinema-booking/pkg/config"
	"github.com/jhoicas/cinema-booking/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando bootstrap de esquema")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store := postgres.NewStore(postgres.WrapPool(pool), log)

	bootCtx, cancel := context.WithTimeout(ctx, cfg.Schema.BootstrapTimeout)
	defer cancel()

	start := time.Now()
	if err := run(bootCtx, store, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("bootstrap de esquema")
		cancel()
		pool.Close()
		os.Exit(1)
	}

	stat := pool.Stat()
	log.Info().
		Dur("took", time.Since(start)).
		Int32("total_conns", stat.TotalConns()).
		Int32("acquired_conns", stat.AcquiredConns()).
		Int32("idle_conns", stat.IdleConns()).
		Msg("esquema listo")
}

func run(ctx context.Context, store *postgres.Store, groups []string) error {
	if len(groups) == 0 {
		return store.Schema.EnsureAll(ctx)
	}
	for _, g := range groups {
		if err := store.Schema.Ensure(ctx, postgres.SchemaGroup(g)); err != nil {
			return err
		}
	}
	return nil
}
