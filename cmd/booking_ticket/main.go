// booking_ticket genera el comprobante PDF de una reserva existente.
//
// Uso: go run ./cmd/booking_ticket <booking_id> [salida.pdf]
// Por defecto escribe reserva-<id>.pdf en el directorio actual.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	appbooking "github.com/jhoicas/cinema-booking/internal/application/booking"
	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/infrastructure/pdf"
	"github.com/jhoicas/cinema-booking/internal/infrastructure/postgres"
	"github.com/jhoicas/cinema-booking/pkg/config"
	"github.com/jhoicas/cinema-booking/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: booking_ticket <booking_id> [salida.pdf]")
		os.Exit(2)
	}
	bookingID, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil || bookingID <= 0 {
		fmt.Fprintf(os.Stderr, "booking_id inválido: %q\n", os.Args[1])
		os.Exit(2)
	}
	out := fmt.Sprintf("reserva-%d.pdf", bookingID)
	if len(os.Args) > 2 {
		out = os.Args[2]
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
	if err := store.Schema.EnsureBookings(ctx); err != nil {
		log.Fatal().Err(err).Msg("esquema de reservas")
	}

	tickets := appbooking.NewTicketUseCase(store.Bookings(), store.Payments(), pdf.NewMarotoTicketGenerator())
	doc, err := tickets.TicketPDF(ctx, bookingID)
	if errors.Is(err, domain.ErrNotFound) {
		log.Fatal().Int64("booking_id", bookingID).Msg("reserva no encontrada")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("generar comprobante")
	}
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", out).Msg("escribir PDF")
	}
	log.Info().Int64("booking_id", bookingID).Str("file", out).Int("bytes", len(doc)).Msg("comprobante generado")
}
