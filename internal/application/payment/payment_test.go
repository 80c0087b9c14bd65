package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cinema-booking/internal/application/payment"
	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// memPayments imita payments con la restricción única sobre transaction_ref.
type memPayments struct {
	rows      map[int64]*entity.Payment
	nextID    int64
	createErr error
	lookupErr error
	hideOnGet bool
	summary   entity.PaymentSummary
	from, to  *time.Time
}

func newMemPayments() *memPayments {
	return &memPayments{rows: make(map[int64]*entity.Payment)}
}

func (m *memPayments) Create(_ context.Context, p *entity.Payment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if p.TransactionRef != nil {
		for _, row := range m.rows {
			if row.TransactionRef != nil && *row.TransactionRef == *p.TransactionRef {
				return &domain.ConstraintViolation{
					Kind:       domain.ConstraintUnique,
					Constraint: entity.PaymentTransactionRefConstraint,
					Table:      "payments",
					Err:        errors.New("duplicate key value violates unique constraint"),
				}
			}
		}
	}
	m.nextID++
	cp := *p
	cp.ID = m.nextID
	if cp.Status == entity.PaymentStatusPaid {
		now := time.Now()
		cp.PaidAt = &now
	}
	m.rows[cp.ID] = &cp
	p.ID, p.PaidAt = cp.ID, cp.PaidAt
	return nil
}

func (m *memPayments) GetByTransactionRef(_ context.Context, ref string) (*entity.Payment, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	if m.hideOnGet {
		return nil, nil
	}
	for _, row := range m.rows {
		if row.TransactionRef != nil && *row.TransactionRef == ref {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPayments) GetForUpdate(_ context.Context, id int64) (*entity.Payment, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (m *memPayments) UpdateStatus(_ context.Context, id int64, status entity.PaymentStatus) error {
	row, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	row.Status = status
	return nil
}

func (m *memPayments) ListByBooking(context.Context, int64) ([]*entity.Payment, error) {
	return nil, nil
}

func (m *memPayments) SumPaid(_ context.Context, from, to *time.Time) (entity.PaymentSummary, error) {
	m.from, m.to = from, to
	return m.summary, nil
}

type fakeTx struct {
	payments repository.PaymentRepository
	calls    int
}

func (f *fakeTx) RunBooking(_ context.Context, fn func(repository.BookingRepository, repository.PaymentRepository) error) error {
	f.calls++
	return fn(nil, f.payments)
}

func TestRecordPayment_Nuevo(t *testing.T) {
	repo := newMemPayments()
	uc := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())

	res, err := uc.RecordPayment(context.Background(), payment.RecordPaymentInput{
		BookingID:      10,
		Method:         entity.PaymentMethodCard,
		Amount:         decimal.RequireFromString("25.50"),
		Status:         entity.PaymentStatusPaid,
		TransactionRef: "TX-1",
	})
	require.NoError(t, err)
	assert.False(t, res.Existed)
	assert.Equal(t, int64(1), res.ID)
	assert.NotNil(t, repo.rows[1].PaidAt)
}

func TestRecordPayment_ReintentoDevuelveElExistente(t *testing.T) {
	repo := newMemPayments()
	uc := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())
	in := payment.RecordPaymentInput{
		BookingID: 10, Method: entity.PaymentMethodCash, Amount: decimal.NewFromInt(10),
		Status: entity.PaymentStatusPaid, TransactionRef: "TX-9",
	}

	first, err := uc.RecordPayment(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.RecordPayment(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, second.Existed)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.rows, 1)
}

func TestRecordPayment_ReferenciaDeOtraReserva(t *testing.T) {
	repo := newMemPayments()
	uc := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())

	first, err := uc.RecordPayment(context.Background(), payment.RecordPaymentInput{
		BookingID: 1, Method: entity.PaymentMethodCard, TransactionRef: "SHARED",
	})
	require.NoError(t, err)
	second, err := uc.RecordPayment(context.Background(), payment.RecordPaymentInput{
		BookingID: 2, Method: entity.PaymentMethodCard, TransactionRef: "SHARED",
	})
	require.NoError(t, err)
	assert.True(t, second.Existed)
	assert.Equal(t, first.ID, second.ID)
}

func TestRecordPayment_SinReferenciaNoDeduplica(t *testing.T) {
	repo := newMemPayments()
	uc := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())
	in := payment.RecordPaymentInput{BookingID: 3, Method: entity.PaymentMethodWallet, TransactionRef: "   "}

	a, err := uc.RecordPayment(context.Background(), in)
	require.NoError(t, err)
	b, err := uc.RecordPayment(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Nil(t, repo.rows[a.ID].TransactionRef)
	assert.Equal(t, entity.PaymentStatusPaid, repo.rows[a.ID].Status)
}

func TestRecordPayment_ValoresPorDefecto(t *testing.T) {
	repo := newMemPayments()
	uc := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())

	res, err := uc.RecordPayment(context.Background(), payment.RecordPaymentInput{
		BookingID: 4, Amount: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	row := repo.rows[res.ID]
	assert.Equal(t, entity.PaymentMethodWallet, row.Method)
	assert.Equal(t, entity.PaymentStatusPaid, row.Status)
	assert.NotNil(t, row.PaidAt, "PAID fija paid_at")
}

func TestRecordPayment_OtraViolacionSePropaga(t *testing.T) {
	check := &domain.ConstraintViolation{
		Kind:       domain.ConstraintCheck,
		Constraint: "payments_method_check",
		Err:        errors.New("new row violates check constraint"),
	}
	repo := newMemPayments()
	repo.createErr = check
	uc := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())

	_, err := uc.RecordPayment(context.Background(), payment.RecordPaymentInput{
		BookingID: 1, Method: "BITCOIN", TransactionRef: "TX-2",
	})
	assert.Same(t, error(check), err)
}

func TestRecordPayment_ConflictoSinFilaDevuelveErrorOriginal(t *testing.T) {
	repo := newMemPayments()
	uc := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())
	in := payment.RecordPaymentInput{BookingID: 1, Method: entity.PaymentMethodCard, TransactionRef: "TX-GONE"}
	_, err := uc.RecordPayment(context.Background(), in)
	require.NoError(t, err)

	repo.hideOnGet = true
	_, err = uc.RecordPayment(context.Background(), in)
	assert.True(t, domain.IsConstraint(err, entity.PaymentTransactionRefConstraint))
}

func TestRecordPayment_FalloDeLecturaIncluyeAmbosErrores(t *testing.T) {
	repo := newMemPayments()
	uc := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())
	in := payment.RecordPaymentInput{BookingID: 1, Method: entity.PaymentMethodCard, TransactionRef: "TX-3"}
	_, err := uc.RecordPayment(context.Background(), in)
	require.NoError(t, err)

	lookup := errors.New("read timeout")
	repo.lookupErr = lookup
	_, err = uc.RecordPayment(context.Background(), in)
	assert.ErrorIs(t, err, lookup)
	assert.True(t, domain.IsConstraint(err, entity.PaymentTransactionRefConstraint))
}

func TestTransition(t *testing.T) {
	repo := newMemPayments()
	rec := payment.NewRecordPaymentUseCase(repo, zerolog.Nop())
	res, err := rec.RecordPayment(context.Background(), payment.RecordPaymentInput{
		BookingID: 1, Method: entity.PaymentMethodCard, Status: entity.PaymentStatusPending,
	})
	require.NoError(t, err)

	tx := &fakeTx{payments: repo}
	uc := payment.NewTransitionPaymentUseCase(tx)

	p, err := uc.Transition(context.Background(), res.ID, entity.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, p.Status)

	_, err = uc.Transition(context.Background(), res.ID, entity.PaymentStatusFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	p, err = uc.Transition(context.Background(), res.ID, entity.PaymentStatusRefunded)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, p.Status)

	_, err = uc.Transition(context.Background(), 999, entity.PaymentStatusPaid)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Transition(context.Background(), res.ID, "SETTLED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 4, tx.calls, "un estado inválido no abre transacción")
}

func TestPaidSummary(t *testing.T) {
	repo := newMemPayments()
	repo.summary = entity.PaymentSummary{PaidCount: 2, PaidTotal: decimal.RequireFromString("40.00")}
	uc := payment.NewSummaryUseCase(repo)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	s, err := uc.PaidSummary(context.Background(), &from, &to)
	require.NoError(t, err)
	assert.Equal(t, 2, s.PaidCount)
	assert.True(t, s.PaidTotal.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, &from, repo.from)

	_, err = uc.PaidSummary(context.Background(), &to, &from)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PaidSummary(context.Background(), nil, nil)
	assert.NoError(t, err)
}
