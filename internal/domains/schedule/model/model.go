package model

import (
	bookingModel "agendalab/internal/domains/booking/model"
	"agendalab/shared/constant"
)

// Canonical time-slot labels, in display order. Labels are opaque keys,
// never parsed into start/end times.
var slots = []string{
	"06:30 - 08:10",
	"08:00 - 09:40",
	"10:00 - 11:40",
	"13:00 - 14:40",
	"14:00 - 15:40",
	"16:00 - 17:40",
}

type SlotStatus struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
	Occupant  string `json:"occupant,omitempty"`
}

func Slots() []string {
	out := make([]string, len(slots))
	copy(out, slots)

	return out
}

func IsValidSlot(slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}

	return false
}

// Derive maps a target date and a booking collection to one SlotStatus per
// catalog slot. A slot is taken iff an active (non-cancelled) booking claims
// it for exactly that date; the first matching booking wins. An empty date
// yields an empty result so callers can prompt for a date instead of
// rendering everything as free.
func Derive(date string, bookings []bookingModel.Booking) []SlotStatus {
	if date == constant.Empty {
		return []SlotStatus{}
	}

	occupants := make(map[string]string, len(slots))
	for _, b := range bookings {
		if b.Status == constant.BookingStatusCancelled {
			continue
		}

		if b.Date.Format(constant.DateOnlyFormat) != date {
			continue
		}

		if _, taken := occupants[b.Slot]; taken {
			continue
		}

		occupants[b.Slot] = b.Professor
	}

	statuses := make([]SlotStatus, len(slots))
	for i, slot := range slots {
		occupant, taken := occupants[slot]

		statuses[i] = SlotStatus{
			Slot:      slot,
			Available: !taken,
			Occupant:  occupant,
		}
	}

	return statuses
}
