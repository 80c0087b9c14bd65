package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod medio de pago.
type PaymentMethod string

const (
	PaymentMethodCard          PaymentMethod = "CARD"
	PaymentMethodCash          PaymentMethod = "CASH"
	PaymentMethodWallet        PaymentMethod = "WALLET"
	PaymentMethodOnlineBanking PaymentMethod = "ONLINE_BANKING"
)

// Valid indica si el método pertenece a la enumeración.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodWallet, PaymentMethodOnlineBanking:
		return true
	}
	return false
}

// PaymentStatus estado de un pago.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Valid indica si el estado pertenece a la enumeración.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// paymentTransitions: PENDING -> PAID | FAILED; PAID -> REFUNDED.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:    {PaymentStatusRefunded},
}

// CanTransitionTo indica si el pago puede pasar de s a next.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentTransactionRefConstraint nombre de la restricción UNIQUE sobre payments.transaction_ref.
// Es la única violación que RecordPayment trata como reintento idempotente.
const PaymentTransactionRefConstraint = "payments_transaction_ref_key"

// Payment representa un pago asociado a una reserva.
// TransactionRef es la referencia externa usada como clave de idempotencia (nil = sin deduplicar).
type Payment struct {
	ID             int64
	BookingID      int64
	Method         PaymentMethod
	Amount         decimal.Decimal
	Status         PaymentStatus
	PaidAt         *time.Time
	TransactionRef *string
	CreatedAt      time.Time
}

// PaymentSummary agregado de pagos PAID (conteo y total).
type PaymentSummary struct {
	PaidCount int
	PaidTotal decimal.Decimal
}
