package postgres

// SchemaGroup identifica un grupo de tablas que se crean juntas.
type SchemaGroup string

const (
	GroupUsers            SchemaGroup = "users"
	GroupMovies           SchemaGroup = "movies"
	GroupTheaters         SchemaGroup = "theaters"
	GroupScreens          SchemaGroup = "screens"
	GroupShowtimes        SchemaGroup = "showtimes"
	GroupBookings         SchemaGroup = "bookings"
	GroupWatchlist        SchemaGroup = "watchlist"
	GroupTeamMembers      SchemaGroup = "team_members"
	GroupStaffSchedules   SchemaGroup = "staff_schedules"
	GroupStaffTasks       SchemaGroup = "staff_tasks"
	GroupStaffTimeRecords SchemaGroup = "staff_time_records"
	GroupItems            SchemaGroup = "items"
)

type groupDef struct {
	deps []SchemaGroup
	ddl  string
}

// AllGroups devuelve los grupos en un orden compatible con sus dependencias.
func AllGroups() []SchemaGroup {
	return []SchemaGroup{
		GroupUsers, GroupMovies, GroupTheaters, GroupScreens, GroupShowtimes,
		GroupBookings, GroupWatchlist, GroupTeamMembers, GroupStaffSchedules,
		GroupStaffTasks, GroupStaffTimeRecords, GroupItems,
	}
}

var schemaGroups = map[SchemaGroup]groupDef{
	GroupUsers: {ddl: `
		CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			first_name    TEXT NOT NULL,
			last_name     TEXT NOT NULL,
			email         TEXT NOT NULL,
			phone         TEXT,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'CUSTOMER',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT users_email_key UNIQUE (email),
			CONSTRAINT users_role_check CHECK (role IN ('CUSTOMER', 'STAFF', 'ADMIN'))
		);`},

	GroupMovies: {ddl: `
		CREATE TABLE IF NOT EXISTS movies (
			id           BIGSERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			description  TEXT,
			duration_min INT NOT NULL,
			rating       TEXT,
			release_date DATE,
			poster_url   TEXT,
			status       TEXT NOT NULL DEFAULT 'COMING_SOON',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT movies_duration_min_check CHECK (duration_min > 0),
			CONSTRAINT movies_status_check CHECK (status IN ('NOW_SHOWING', 'COMING_SOON', 'ARCHIVED'))
		);`},

	GroupTheaters: {ddl: `
		CREATE TABLE IF NOT EXISTS theaters (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			location   TEXT,
			address    TEXT,
			city       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`},

	GroupScreens: {deps: []SchemaGroup{GroupTheaters}, ddl: `
		CREATE TABLE IF NOT EXISTS screens (
			id          BIGSERIAL PRIMARY KEY,
			theater_id  BIGINT NOT NULL REFERENCES theaters(id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			total_seats INT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT screens_theater_id_name_key UNIQUE (theater_id, name),
			CONSTRAINT screens_total_seats_check CHECK (total_seats > 0)
		);`},

	GroupShowtimes: {deps: []SchemaGroup{GroupMovies, GroupScreens}, ddl: `
		CREATE TABLE IF NOT EXISTS showtimes (
			id         BIGSERIAL PRIMARY KEY,
			movie_id   BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			screen_id  BIGINT NOT NULL REFERENCES screens(id) ON DELETE CASCADE,
			start_time TIMESTAMPTZ NOT NULL,
			end_time   TIMESTAMPTZ NOT NULL,
			price      NUMERIC(10,2) NOT NULL,
			language   TEXT,
			format     TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT showtimes_price_check CHECK (price >= 0),
			CONSTRAINT showtimes_time_range_check CHECK (end_time > start_time)
		);
		CREATE INDEX IF NOT EXISTS idx_showtimes_movie_start ON showtimes (movie_id, start_time);`},

	GroupBookings: {deps: []SchemaGroup{GroupUsers, GroupShowtimes}, ddl: `
		CREATE TABLE IF NOT EXISTS bookings (
			id           BIGSERIAL PRIMARY KEY,
			user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			showtime_id  BIGINT NOT NULL REFERENCES showtimes(id) ON DELETE CASCADE,
			status       TEXT NOT NULL DEFAULT 'PENDING',
			total_amount NUMERIC(10,2) NOT NULL,
			booked_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT bookings_total_amount_check CHECK (total_amount >= 0),
			CONSTRAINT bookings_status_check CHECK (status IN ('PENDING', 'CONFIRMED', 'CANCELLED', 'REFUNDED'))
		);
		CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id);

		CREATE TABLE IF NOT EXISTS booking_seats (
			id         BIGSERIAL PRIMARY KEY,
			booking_id BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
			seat_label TEXT NOT NULL,
			price      NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT booking_seats_booking_id_seat_label_key UNIQUE (booking_id, seat_label),
			CONSTRAINT booking_seats_price_check CHECK (price >= 0)
		);

		CREATE TABLE IF NOT EXISTS payments (
			id              BIGSERIAL PRIMARY KEY,
			booking_id      BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
			method          TEXT NOT NULL,
			amount          NUMERIC(10,2) NOT NULL,
			status          TEXT NOT NULL DEFAULT 'PENDING',
			paid_at         TIMESTAMPTZ,
			transaction_ref TEXT,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT payments_transaction_ref_key UNIQUE (transaction_ref),
			CONSTRAINT payments_amount_check CHECK (amount >= 0),
			CONSTRAINT payments_method_check CHECK (method IN ('CARD', 'CASH', 'WALLET', 'ONLINE_BANKING')),
			CONSTRAINT payments_status_check CHECK (status IN ('PENDING', 'PAID', 'FAILED', 'REFUNDED'))
		);
		CREATE INDEX IF NOT EXISTS idx_payments_booking ON payments (booking_id);`},

	GroupWatchlist: {deps: []SchemaGroup{GroupUsers, GroupMovies}, ddl: `
		CREATE TABLE IF NOT EXISTS watchlist (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			movie_id   BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT watchlist_user_id_movie_id_key UNIQUE (user_id, movie_id)
		);`},

	GroupTeamMembers: {deps: []SchemaGroup{GroupTheaters}, ddl: `
		CREATE TABLE IF NOT EXISTS team_members (
			id         BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			email      TEXT NOT NULL,
			phone      TEXT,
			role       TEXT NOT NULL DEFAULT 'STAFF',
			department TEXT,
			status     TEXT NOT NULL DEFAULT 'ACTIVE',
			theater_id BIGINT REFERENCES theaters(id) ON DELETE SET NULL,
			hired_at   DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT team_members_email_key UNIQUE (email),
			CONSTRAINT team_members_role_check CHECK (role IN ('ADMIN', 'MANAGER', 'STAFF')),
			CONSTRAINT team_members_status_check CHECK (status IN ('ACTIVE', 'INACTIVE', 'ON_LEAVE'))
		);`},

	GroupStaffSchedules: {deps: []SchemaGroup{GroupTeamMembers}, ddl: `
		CREATE TABLE IF NOT EXISTS staff_schedules (
			id             BIGSERIAL PRIMARY KEY,
			team_member_id BIGINT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
			shift_date     DATE NOT NULL,
			start_time     TIME NOT NULL,
			end_time       TIME NOT NULL,
			role_on_shift  TEXT,
			notes          TEXT,
			status         TEXT NOT NULL DEFAULT 'SCHEDULED',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT staff_schedules_member_shift_key UNIQUE (team_member_id, shift_date, start_time),
			CONSTRAINT staff_schedules_time_range_check CHECK (end_time > start_time),
			CONSTRAINT staff_schedules_status_check CHECK (status IN ('SCHEDULED', 'COMPLETED', 'CANCELLED', 'MISSED'))
		);

		CREATE TABLE IF NOT EXISTS staff_time_off_requests (
			id                 BIGSERIAL PRIMARY KEY,
			team_member_id     BIGINT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
			request_type       TEXT NOT NULL DEFAULT 'VACATION',
			start_date         DATE NOT NULL,
			end_date           DATE NOT NULL,
			partial_day        BOOLEAN NOT NULL DEFAULT FALSE,
			partial_start_time TIME,
			partial_end_time   TIME,
			reason             TEXT NOT NULL,
			status             TEXT NOT NULL DEFAULT 'PENDING',
			created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT staff_time_off_requests_date_range_check CHECK (end_date >= start_date),
			CONSTRAINT staff_time_off_requests_type_check CHECK (request_type IN ('VACATION', 'SICK', 'PERSONAL', 'OTHER')),
			CONSTRAINT staff_time_off_requests_status_check CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED', 'CANCELLED'))
		);
		CREATE INDEX IF NOT EXISTS idx_staff_time_off_member ON staff_time_off_requests (team_member_id, start_date);`},

	GroupStaffTasks: {deps: []SchemaGroup{GroupTeamMembers}, ddl: `
		CREATE TABLE IF NOT EXISTS staff_tasks (
			id             BIGSERIAL PRIMARY KEY,
			team_member_id BIGINT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
			title          TEXT NOT NULL,
			description    TEXT,
			priority       TEXT NOT NULL DEFAULT 'MEDIUM',
			due_date       DATE,
			due_time       TIME,
			status         TEXT NOT NULL DEFAULT 'PENDING',
			completed_at   TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT staff_tasks_priority_check CHECK (priority IN ('LOW', 'MEDIUM', 'HIGH')),
			CONSTRAINT staff_tasks_status_check CHECK (status IN ('PENDING', 'IN_PROGRESS', 'COMPLETED', 'CANCELLED'))
		);
		CREATE INDEX IF NOT EXISTS idx_staff_tasks_member ON staff_tasks (team_member_id, status);`},

	GroupStaffTimeRecords: {deps: []SchemaGroup{GroupTeamMembers}, ddl: `
		CREATE TABLE IF NOT EXISTS staff_time_records (
			id             BIGSERIAL PRIMARY KEY,
			team_member_id BIGINT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
			work_date      DATE NOT NULL,
			clock_in_at    TIMESTAMPTZ,
			clock_out_at   TIMESTAMPTZ,
			break_minutes  INT NOT NULL DEFAULT 0,
			notes          TEXT,
			status         TEXT NOT NULL DEFAULT 'CLOCKED_IN',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT staff_time_records_member_date_key UNIQUE (team_member_id, work_date),
			CONSTRAINT staff_time_records_break_check CHECK (break_minutes >= 0),
			CONSTRAINT staff_time_records_status_check CHECK (status IN ('CLOCKED_IN', 'COMPLETED', 'MISSED', 'ABSENT'))
		);`},

	GroupItems: {ddl: `
		CREATE TABLE IF NOT EXISTS items (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			value      TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`},
}
