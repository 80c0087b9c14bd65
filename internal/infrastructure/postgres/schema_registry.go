package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/cinema-booking/internal/domain"
)

// SchemaRegistry crea bajo demanda los grupos de tablas, una sola vez por proceso.
// Llamadas concurrentes para el mismo grupo comparten un único intento; un intento
// fallido se informa a todos los que esperaban y no queda cacheado.
type SchemaRegistry struct {
	q      Querier
	log    zerolog.Logger
	flight singleflight.Group

	mu    sync.RWMutex
	ready map[SchemaGroup]bool
}

// NewSchemaRegistry construye el registro sobre el pool (o cualquier Querier).
func NewSchemaRegistry(q Querier, log zerolog.Logger) *SchemaRegistry {
	return &SchemaRegistry{
		q:     q,
		log:   log,
		ready: make(map[SchemaGroup]bool),
	}
}

// Ready indica si el grupo ya fue creado con éxito en este proceso.
func (r *SchemaRegistry) Ready(g SchemaGroup) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready[g]
}

// Ensure garantiza que el grupo y sus dependencias existen.
// Si ctx se cancela, el llamador deja de esperar pero el intento compartido continúa.
func (r *SchemaRegistry) Ensure(ctx context.Context, g SchemaGroup) error {
	def, ok := schemaGroups[g]
	if !ok {
		return fmt.Errorf("schema group %q: %w", g, domain.ErrInvalidInput)
	}
	if r.Ready(g) {
		return nil
	}

	ch := r.flight.DoChan(string(g), func() (any, error) {
		return nil, r.create(context.WithoutCancel(ctx), g, def)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *SchemaRegistry) create(ctx context.Context, g SchemaGroup, def groupDef) error {
	// Otro vuelo pudo terminar entre el Ready del llamador y DoChan.
	if r.Ready(g) {
		return nil
	}
	for _, dep := range def.deps {
		if err := r.Ensure(ctx, dep); err != nil {
			return fmt.Errorf("ensure %s: dependency %s: %w", g, dep, err)
		}
	}

	start := time.Now()
	if _, err := r.q.Exec(ctx, def.ddl); err != nil {
		r.log.Error().Err(err).Str("group", string(g)).Msg("schema bootstrap failed")
		return fmt.Errorf("ensure %s: %w", g, classifyError(err))
	}

	r.mu.Lock()
	r.ready[g] = true
	r.mu.Unlock()

	r.log.Debug().Str("group", string(g)).Dur("took", time.Since(start)).Msg("schema group ready")
	return nil
}

// EnsureAll crea todos los grupos en paralelo; las dependencias compartidas se crean una vez.
func (r *SchemaRegistry) EnsureAll(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)
	for _, g := range AllGroups() {
		eg.Go(func() error {
			return r.Ensure(egCtx, g)
		})
	}
	return eg.Wait()
}

func (r *SchemaRegistry) EnsureUsers(ctx context.Context) error {
	return r.Ensure(ctx, GroupUsers)
}

func (r *SchemaRegistry) EnsureMovies(ctx context.Context) error {
	return r.Ensure(ctx, GroupMovies)
}

func (r *SchemaRegistry) EnsureTheaters(ctx context.Context) error {
	return r.Ensure(ctx, GroupTheaters)
}

// EnsureScreens crea screens (y theaters antes).
func (r *SchemaRegistry) EnsureScreens(ctx context.Context) error {
	return r.Ensure(ctx, GroupScreens)
}

// EnsureShowtimes crea showtimes tras movies y screens.
func (r *SchemaRegistry) EnsureShowtimes(ctx context.Context) error {
	return r.Ensure(ctx, GroupShowtimes)
}

// EnsureBookings crea bookings, booking_seats y payments.
func (r *SchemaRegistry) EnsureBookings(ctx context.Context) error {
	return r.Ensure(ctx, GroupBookings)
}

func (r *SchemaRegistry) EnsureWatchlist(ctx context.Context) error {
	return r.Ensure(ctx, GroupWatchlist)
}

func (r *SchemaRegistry) EnsureTeamMembers(ctx context.Context) error {
	return r.Ensure(ctx, GroupTeamMembers)
}

// EnsureStaffSchedules crea staff_schedules y staff_time_off_requests.
func (r *SchemaRegistry) EnsureStaffSchedules(ctx context.Context) error {
	return r.Ensure(ctx, GroupStaffSchedules)
}

func (r *SchemaRegistry) EnsureStaffTasks(ctx context.Context) error {
	return r.Ensure(ctx, GroupStaffTasks)
}

func (r *SchemaRegistry) EnsureStaffTimeRecords(ctx context.Context) error {
	return r.Ensure(ctx, GroupStaffTimeRecords)
}

func (r *SchemaRegistry) EnsureItems(ctx context.Context) error {
	return r.Ensure(ctx, GroupItems)
}
