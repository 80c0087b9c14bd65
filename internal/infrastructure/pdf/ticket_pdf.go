// Package pdf genera el comprobante de reserva en PDF.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Cine + ciudad   │  Reserva N° + estado │
//	│  ──────────────────────────────────────────── │
//	│  FUNCIÓN: Película / Sala / Fecha y hora      │
//	│  CLIENTE: Nombre + email                      │
//	│  ──────────────────────────────────────────── │
//	│  TABLA: Butaca | Precio                       │
//	│  ──────────────────────────────────────────── │
//	│  TOTAL + pagos registrados                    │
//	│  FOOTER: QR con la referencia de la reserva   │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cinema-booking/internal/application/booking"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

var _ booking.TicketPDFGenerator = (*MarotoTicketGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 128, Green: 0, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoTicketGenerator implementa booking.TicketPDFGenerator usando Maroto v2.
type MarotoTicketGenerator struct{}

func NewMarotoTicketGenerator() *MarotoTicketGenerator { return &MarotoTicketGenerator{} }

// GenerateTicketPDF genera el PDF y devuelve sus bytes.
func (g *MarotoTicketGenerator) GenerateTicketPDF(
	_ context.Context,
	ticket *entity.BookingTicket,
	seats []*entity.BookingSeat,
	payments []*entity.Payment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de reserva", true).
		WithAuthor(ticket.TheaterName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ticket))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(showtimeRow(ticket))
	m.AddRows(customerRow(ticket))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(seatHeaderRow())
	m.AddRows(seatRows(seats)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(ticket.Booking.TotalAmount))
	m.AddRows(paymentRows(payments)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(ticket))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(t *entity.BookingTicket) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(t.TheaterName, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
			text.New(t.TheaterCity, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("RESERVA N° %d", t.Booking.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(string(t.Booking.Status), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func showtimeRow(t *entity.BookingTicket) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New(t.MovieTitle, props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
			text.New(fmt.Sprintf("%s   |   %s - %s",
				t.ScreenName,
				t.StartTime.Format("02/01/2006 15:04"),
				t.EndTime.Format("15:04"),
			), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func customerRow(t *entity.BookingTicket) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cliente: %s   |   %s",
				nonEmpty(strings.TrimSpace(t.CustomerName), "—"),
				nonEmpty(t.CustomerEmail, "—"),
			), props.Text{Size: 8, Top: 2}),
		),
	)
}

func seatHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New("Butaca", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New("Precio", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right, Right: 1})),
	)
}

func seatRows(seats []*entity.BookingSeat) []core.Row {
	if len(seats) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin butacas asignadas", props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray}),
		))}
	}
	out := make([]core.Row, 0, len(seats))
	for _, s := range seats {
		out = append(out, row.New(6).Add(
			col.New(8).Add(text.New(s.SeatLabel, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New("$"+formatMoney(s.Price), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return out
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New("$"+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func paymentRows(payments []*entity.Payment) []core.Row {
	out := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		ref := "sin referencia"
		if p.TransactionRef != nil {
			ref = *p.TransactionRef
		}
		out = append(out, row.New(5).Add(
			col.New(12).Add(text.New(
				fmt.Sprintf("Pago %s %s  $%s  (%s)", p.Method, p.Status, formatMoney(p.Amount), ref),
				props.Text{Size: 7, Align: align.Right, Color: colorGray, Right: 1},
			)),
		))
	}
	return out
}

func footerRow(t *entity.BookingTicket) core.Row {
	return row.New(36).Add(
		col.New(4).Add(code.NewQr(ticketReference(t), props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Presente este código en la entrada de la sala.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New(ticketReference(t), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 16, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ticketReference identificador legible de la reserva: BK-<reserva>-<función>.
func ticketReference(t *entity.BookingTicket) string {
	return fmt.Sprintf("BK-%06d-%d", t.Booking.ID, t.Booking.ShowtimeID)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal. Ej: 25000.5 → "25.000,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}
