package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "agendalab/internal/domains/booking/model"
	"agendalab/internal/domains/schedule/model"
	"agendalab/shared/constant"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := time.Parse(constant.DateOnlyFormat, value)
	assert.NoError(t, err)

	return d
}

func TestSlots(t *testing.T) {
	catalog := model.Slots()

	assert.Len(t, catalog, 6)
	assert.Equal(t, "06:30 - 08:10", catalog[0])
	assert.Equal(t, "16:00 - 17:40", catalog[len(catalog)-1])

	// Mutating the returned slice must not affect the catalog
	catalog[0] = "mutated"
	assert.Equal(t, "06:30 - 08:10", model.Slots()[0])
}

func TestIsValidSlot(t *testing.T) {
	for _, s := range model.Slots() {
		assert.True(t, model.IsValidSlot(s))
	}

	assert.False(t, model.IsValidSlot("07:00 - 08:00"))
	assert.False(t, model.IsValidSlot(""))
}

func TestDerive(t *testing.T) {
	date := "2025-06-10"

	tests := []struct {
		name     string
		date     string
		bookings []bookingModel.Booking
		check    func(t *testing.T, statuses []model.SlotStatus)
	}{
		{
			name:     "empty date returns empty result",
			date:     "",
			bookings: []bookingModel.Booking{{Slot: "08:00 - 09:40", Status: constant.BookingStatusConfirmed}},
			check: func(t *testing.T, statuses []model.SlotStatus) {
				assert.Empty(t, statuses)
			},
		},
		{
			name:     "no bookings means every slot available",
			date:     date,
			bookings: nil,
			check: func(t *testing.T, statuses []model.SlotStatus) {
				assert.Len(t, statuses, len(model.Slots()))
				for _, st := range statuses {
					assert.True(t, st.Available)
					assert.Empty(t, st.Occupant)
				}
			},
		},
		{
			name: "confirmed booking occupies its slot",
			date: date,
			bookings: []bookingModel.Booking{
				{
					Date:      mustDate(t, date),
					Slot:      "08:00 - 09:40",
					Professor: "Prof. Ana",
					Status:    constant.BookingStatusConfirmed,
				},
			},
			check: func(t *testing.T, statuses []model.SlotStatus) {
				assert.Len(t, statuses, len(model.Slots()))
				assert.False(t, statuses[1].Available)
				assert.Equal(t, "Prof. Ana", statuses[1].Occupant)
				assert.True(t, statuses[0].Available)
				assert.True(t, statuses[2].Available)
			},
		},
		{
			name: "pending booking also occupies its slot",
			date: date,
			bookings: []bookingModel.Booking{
				{
					Date:      mustDate(t, date),
					Slot:      "10:00 - 11:40",
					Professor: "Prof. Bruno",
					Status:    constant.BookingStatusPending,
				},
			},
			check: func(t *testing.T, statuses []model.SlotStatus) {
				assert.False(t, statuses[2].Available)
				assert.Equal(t, "Prof. Bruno", statuses[2].Occupant)
			},
		},
		{
			name: "cancelled booking frees its slot",
			date: date,
			bookings: []bookingModel.Booking{
				{
					Date:      mustDate(t, date),
					Slot:      "08:00 - 09:40",
					Professor: "Prof. Ana",
					Status:    constant.BookingStatusCancelled,
				},
			},
			check: func(t *testing.T, statuses []model.SlotStatus) {
				for _, st := range statuses {
					assert.True(t, st.Available)
				}
			},
		},
		{
			name: "booking on another date is ignored",
			date: date,
			bookings: []bookingModel.Booking{
				{
					Date:      mustDate(t, "2025-06-11"),
					Slot:      "08:00 - 09:40",
					Professor: "Prof. Ana",
					Status:    constant.BookingStatusConfirmed,
				},
			},
			check: func(t *testing.T, statuses []model.SlotStatus) {
				for _, st := range statuses {
					assert.True(t, st.Available)
				}
			},
		},
		{
			name: "first active booking wins on duplicate slot",
			date: date,
			bookings: []bookingModel.Booking{
				{
					Date:      mustDate(t, date),
					Slot:      "08:00 - 09:40",
					Professor: "Prof. Ana",
					Status:    constant.BookingStatusConfirmed,
				},
				{
					Date:      mustDate(t, date),
					Slot:      "08:00 - 09:40",
					Professor: "Prof. Bruno",
					Status:    constant.BookingStatusPending,
				},
			},
			check: func(t *testing.T, statuses []model.SlotStatus) {
				assert.False(t, statuses[1].Available)
				assert.Equal(t, "Prof. Ana", statuses[1].Occupant)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statuses := model.Derive(tt.date, tt.bookings)
			tt.check(t, statuses)
		})
	}
}

func TestDerive_OrderFollowsCatalog(t *testing.T) {
	statuses := model.Derive("2025-06-10", nil)

	catalog := model.Slots()
	assert.Len(t, statuses, len(catalog))

	for i, st := range statuses {
		assert.Equal(t, catalog[i], st.Slot)
	}
}
