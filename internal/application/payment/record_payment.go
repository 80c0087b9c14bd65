package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cinema-booking/internal/domain"
	"github.com/jhoicas/cinema-booking/internal/domain/entity"
	"github.com/jhoicas/cinema-booking/internal/domain/repository"
)

// RecordPaymentInput datos del pago. TransactionRef vacío significa sin deduplicación.
// Method y Status vacíos toman WALLET y PAID.
type RecordPaymentInput struct {
	BookingID      int64
	Method         entity.PaymentMethod
	Amount         decimal.Decimal
	Status         entity.PaymentStatus
	TransactionRef string
}

// RecordPaymentResult Existed indica que ya había un pago con la misma referencia.
type RecordPaymentResult struct {
	ID      int64
	Existed bool
}

// RecordPaymentUseCase registra pagos de forma idempotente por referencia de transacción.
type RecordPaymentUseCase struct {
	payments repository.PaymentRepository
	log      zerolog.Logger
}

// NewRecordPaymentUseCase construye el caso de uso sobre el repo de pagos del pool.
func NewRecordPaymentUseCase(payments repository.PaymentRepository, log zerolog.Logger) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{payments: payments, log: log}
}

// RecordPayment inserta el pago. Si la referencia ya existe devuelve el pago previo con Existed=true;
// ese pago puede pertenecer a otra reserva. Cualquier otro error se propaga sin cambios.
func (uc *RecordPaymentUseCase) RecordPayment(ctx context.Context, in RecordPaymentInput) (RecordPaymentResult, error) {
	status := in.Status
	if status == "" {
		status = entity.PaymentStatusPaid
	}
	method := in.Method
	if method == "" {
		method = entity.PaymentMethodWallet
	}
	ref := strings.TrimSpace(in.TransactionRef)

	p := &entity.Payment{
		BookingID: in.BookingID,
		Method:    method,
		Amount:    in.Amount,
		Status:    status,
	}
	if ref != "" {
		p.TransactionRef = &ref
	}

	err := uc.payments.Create(ctx, p)
	if err == nil {
		return RecordPaymentResult{ID: p.ID}, nil
	}
	if ref == "" || !domain.IsConstraint(err, entity.PaymentTransactionRefConstraint) {
		return RecordPaymentResult{}, err
	}

	existing, lookupErr := uc.payments.GetByTransactionRef(ctx, ref)
	if lookupErr != nil {
		return RecordPaymentResult{}, errors.Join(err, fmt.Errorf("lookup existing payment: %w", lookupErr))
	}
	if existing == nil {
		// La fila en conflicto desapareció entre el INSERT y la lectura.
		return RecordPaymentResult{}, err
	}
	if existing.BookingID != in.BookingID {
		uc.log.Warn().
			Str("transaction_ref", ref).
			Int64("booking_id", in.BookingID).
			Int64("existing_booking_id", existing.BookingID).
			Msg("transaction ref already used by another booking")
	} else {
		uc.log.Debug().Str("transaction_ref", ref).Int64("payment_id", existing.ID).Msg("payment replay")
	}
	return RecordPaymentResult{ID: existing.ID, Existed: true}, nil
}
