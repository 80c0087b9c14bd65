package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cinema-booking/internal/domain/entity"
)

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to entity.PaymentStatus
		allowed  bool
	}{
		{entity.PaymentStatusPending, entity.PaymentStatusPaid, true},
		{entity.PaymentStatusPending, entity.PaymentStatusFailed, true},
		{entity.PaymentStatusPaid, entity.PaymentStatusRefunded, true},
		{entity.PaymentStatusPending, entity.PaymentStatusRefunded, false},
		{entity.PaymentStatusPaid, entity.PaymentStatusPending, false},
		{entity.PaymentStatusPaid, entity.PaymentStatusFailed, false},
		{entity.PaymentStatusFailed, entity.PaymentStatusPaid, false},
		{entity.PaymentStatusRefunded, entity.PaymentStatusPaid, false},
		{entity.PaymentStatusPending, entity.PaymentStatusPending, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, entity.PaymentMethodOnlineBanking.Valid())
	assert.False(t, entity.PaymentMethod("BITCOIN").Valid())
	assert.True(t, entity.PaymentStatusRefunded.Valid())
	assert.False(t, entity.PaymentStatus("paid").Valid())
	assert.True(t, entity.BookingStatusConfirmed.Valid())
	assert.False(t, entity.BookingStatus("").Valid())
	assert.True(t, entity.TeamRoleManager.Valid())
	assert.True(t, entity.TeamMemberOnLeave.Valid())
}

func TestTeamRole_UserRole(t *testing.T) {
	assert.Equal(t, entity.UserRoleAdmin, entity.TeamRoleAdmin.UserRole())
	assert.Equal(t, entity.UserRoleStaff, entity.TeamRoleManager.UserRole())
	assert.Equal(t, entity.UserRoleStaff, entity.TeamRoleStaff.UserRole())
}
