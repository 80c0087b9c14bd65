// Package catalogxml lee el catálogo de cines, salas y películas que envían los distribuidores.
// Los archivos antiguos vienen en ISO-8859-1 o Windows-1252; el resto en UTF-8.
package catalogxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

type catalogDoc struct {
	XMLName  xml.Name     `xml:"catalog"`
	Theaters []theaterDoc `xml:"theater"`
	Movies   []movieDoc   `xml:"movie"`
}

type theaterDoc struct {
	Name     string      `xml:"name,attr"`
	City     string      `xml:"city,attr"`
	Address  string      `xml:"address,attr"`
	Location string      `xml:"location,attr"`
	Screens  []screenDoc `xml:"screen"`
}

type screenDoc struct {
	Name  string `xml:"name,attr"`
	Seats int    `xml:"seats,attr"`
}

type movieDoc struct {
	Title       string `xml:"title,attr"`
	DurationMin int    `xml:"durationMin,attr"`
	Rating      string `xml:"rating,attr"`
	ReleaseDate string `xml:"releaseDate,attr"`
	Status      string `xml:"status,attr"`
	PosterURL   string `xml:"posterUrl,attr"`
	Description string `xml:",chardata"`
}

// Catalog resultado del parseo, listo para persistir.
type Catalog struct {
	Theaters []*entity.Theater
	Movies   []*entity.Movie
}

// Parse decodifica el catálogo. Las entradas sin nombre/título se descartan; una duración o
// aforo no positivos, un estado desconocido o una fecha mal formada devuelven ErrInvalidInput.
func Parse(r io.Reader) (*Catalog, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var doc catalogDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	out := &Catalog{}
	for _, t := range doc.Theaters {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}
		th := &entity.Theater{
			Name:     name,
			City:     strings.TrimSpace(t.City),
			Address:  optional(t.Address),
			Location: optional(t.Location),
		}
		for _, s := range t.Screens {
			sname := strings.TrimSpace(s.Name)
			if sname == "" {
				continue
			}
			if s.Seats <= 0 {
				return nil, fmt.Errorf("theater %q screen %q seats %d: %w", name, sname, s.Seats, domain.ErrInvalidInput)
			}
			th.Screens = append(th.Screens, entity.Screen{Name: sname, TotalSeats: s.Seats})
		}
		out.Theaters = append(out.Theaters, th)
	}

	for _, m := range doc.Movies {
		title := strings.TrimSpace(m.Title)
		if title == "" {
			continue
		}
		if m.DurationMin <= 0 {
			return nil, fmt.Errorf("movie %q duration %d: %w", title, m.DurationMin, domain.ErrInvalidInput)
		}
		status := entity.MovieComingSoon
		if s := strings.TrimSpace(m.Status); s != "" {
			status = entity.MovieStatus(strings.ToUpper(s))
		}
		if !status.Valid() {
			return nil, fmt.Errorf("movie %q status %q: %w", title, m.Status, domain.ErrInvalidInput)
		}
		movie := &entity.Movie{
			Title:       title,
			DurationMin: m.DurationMin,
			Rating:      optional(m.Rating),
			PosterURL:   optional(m.PosterURL),
			Description: optional(m.Description),
			Status:      status,
		}
		if d := strings.TrimSpace(m.ReleaseDate); d != "" {
			t, err := time.Parse(time.DateOnly, d)
			if err != nil {
				return nil, fmt.Errorf("movie %q release date: %w", title, domain.ErrInvalidInput)
			}
			movie.ReleaseDate = &t
		}
		out.Movies = append(out.Movies, movie)
	}
	return out, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "utf-8", "utf8", "":
		return input, nil
	}
	return nil, fmt.Errorf("unsupported charset %q", charset)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
