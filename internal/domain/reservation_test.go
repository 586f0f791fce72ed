package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faithworks/FWS-ReservationService/pkg/types"
)

func TestReservation_Overlaps(t *testing.T) {
	reservation := &Reservation{
		StartTime: "10:00",
		EndTime:   "12:00",
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"identical window", "10:00", "12:00", true},
		{"contained inside", "10:30", "11:30", true},
		{"contains existing", "09:00", "13:00", true},
		{"overlaps start", "09:00", "10:30", true},
		{"overlaps end", "11:30", "13:00", true},
		{"one minute overlap", "11:59", "13:00", true},
		{"back to back before", "08:00", "10:00", false},
		{"back to back after", "12:00", "14:00", false},
		{"fully before", "08:00", "09:00", false},
		{"fully after", "13:00", "14:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reservation.Overlaps(types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: ReservationConfirmed}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: ReservationPendingApproval}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: ReservationCancelled}).CanBeCancelled())
}

func TestEquipmentItem_IsAvailable(t *testing.T) {
	item := &EquipmentItem{Quantity: 100, AvailableQuantity: 30}

	assert.True(t, item.IsAvailable(30))
	assert.True(t, item.IsAvailable(1))
	assert.False(t, item.IsAvailable(31))
	assert.False(t, item.IsAvailable(0))
}

func TestApprovalRequest_States(t *testing.T) {
	pending := &ApprovalRequest{Status: ApprovalPending}
	assert.True(t, pending.IsPending())
	assert.False(t, pending.IsResolved())

	approved := &ApprovalRequest{Status: ApprovalApproved}
	assert.False(t, approved.IsPending())
	assert.True(t, approved.IsResolved())
}
