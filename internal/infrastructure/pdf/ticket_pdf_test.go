package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0,00",
		"12.5":     "12,50",
		"999":      "999,00",
		"25000.5":  "25.000,50",
		"1234567":  "1.234.567,00",
		"-1500.25": "-1.500,25",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateTicketPDF(t *testing.T) {
	ref := "tx-100"
	start := time.Date(2026, 5, 1, 20, 30, 0, 0, time.UTC)
	ticket := &entity.BookingTicket{
		Booking: entity.Booking{
			ID: 42, ShowtimeID: 7, Status: entity.BookingStatusConfirmed,
			TotalAmount: decimal.RequireFromString("25.00"),
		},
		CustomerName: "Ada Lovelace", CustomerEmail: "ada@example.com",
		MovieTitle: "Metropolis", TheaterName: "Cine Centro", TheaterCity: "Bogotá",
		ScreenName: "Sala 1", StartTime: start, EndTime: start.Add(150 * time.Minute),
	}
	seats := []*entity.BookingSeat{
		{SeatLabel: "A1", Price: decimal.RequireFromString("12.50")},
		{SeatLabel: "A2", Price: decimal.RequireFromString("12.50")},
	}
	payments := []*entity.Payment{{
		Method: entity.PaymentMethodCard, Status: entity.PaymentStatusPaid,
		Amount: decimal.RequireFromString("25.00"), TransactionRef: &ref,
	}}

	doc, err := NewMarotoTicketGenerator().GenerateTicketPDF(context.Background(), ticket, seats, payments)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Equal(t, "BK-000042-7", ticketReference(ticket))
}

func TestGenerateTicketPDF_SinButacas(t *testing.T) {
	ticket := &entity.BookingTicket{Booking: entity.Booking{ID: 1, Status: entity.BookingStatusPending}}
	doc, err := NewMarotoTicketGenerator().GenerateTicketPDF(context.Background(), ticket, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
