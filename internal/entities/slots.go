package entities

import (
	"fmt"
	"strings"
	"time"
)

// SlotState is the resolved state of a (date, slot) pair after reconciliation.
type SlotState int

const (
	SlotFree SlotState = iota
	SlotBlocked
	SlotBooked
)

func (s SlotState) String() string {
	switch s {
	case SlotFree:
		return "free"
	case SlotBlocked:
		return "blocked"
	case SlotBooked:
		return "booked"
	}
	return "unknown"
}

// SlotDef is one fixed daily time window. Times are local "HH:MM" strings.
type SlotDef struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DefaultSlotDefs are the business's four daily wash windows.
var DefaultSlotDefs = []SlotDef{
	{Start: "08:30", End: "10:30"},
	{Start: "10:30", End: "12:30"},
	{Start: "14:00", End: "16:00"},
	{Start: "16:00", End: "18:00"},
}

// ParseSlotDefs parses "08:30-10:30,10:30-12:30,..." into slot definitions.
func ParseSlotDefs(s string) ([]SlotDef, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty slot definition list")
	}
	var defs []SlotDef
	for _, part := range strings.Split(s, ",") {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid slot definition %q", part)
		}
		start := strings.TrimSpace(bounds[0])
		end := strings.TrimSpace(bounds[1])
		if _, err := time.Parse("15:04", start); err != nil {
			return nil, fmt.Errorf("invalid slot start %q: %w", start, err)
		}
		if _, err := time.Parse("15:04", end); err != nil {
			return nil, fmt.Errorf("invalid slot end %q: %w", end, err)
		}
		defs = append(defs, SlotDef{Start: start, End: end})
	}
	return defs, nil
}

// DayAvailability lists the slot start times an admin has blocked for a date.
// The upstream API names the field "slots_available" but it holds the taken
// slots; a date with no record has no admin blocks at all.
type DayAvailability struct {
	Date          time.Time `json:"date"`
	OccupiedSlots []string  `json:"slots_available"`
}

// ReconciledSlotEvent is the derived, authoritative state of one calendar
// entry. It is recomputed from scratch on every reconciliation pass and never
// mutated in place.
type ReconciledSlotEvent struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
	State SlotState

	// Date ("YYYY-MM-DD") and Slot ("HH:MM") reference the slot-universe pair
	// for Free and Blocked entries so mutations can build their request.
	Date string
	Slot string

	// Event is set for Booked entries and points at the backing order.
	Event *BookingEvent
}
