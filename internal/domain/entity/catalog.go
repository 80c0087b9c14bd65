package entity

import "time"

// MovieStatus estado de cartelera.
type MovieStatus string

const (
	MovieNowShowing MovieStatus = "NOW_SHOWING"
	MovieComingSoon MovieStatus = "COMING_SOON"
	MovieArchived   MovieStatus = "ARCHIVED"
)

// Valid indica si el estado pertenece a la enumeración.
func (s MovieStatus) Valid() bool {
	return s == MovieNowShowing || s == MovieComingSoon || s == MovieArchived
}

// Movie película del catálogo.
type Movie struct {
	ID          int64
	Title       string
	Description *string
	DurationMin int
	Rating      *string
	ReleaseDate *time.Time
	PosterURL   *string
	Status      MovieStatus
}

// Theater cine (complejo) con sus salas.
type Theater struct {
	ID       int64
	Name     string
	Location *string
	Address  *string
	City     string
	Screens  []Screen
}

// Screen sala de un cine. (TheaterID, Name) es único.
type Screen struct {
	ID         int64
	TheaterID  int64
	Name       string
	TotalSeats int
}
