package service

import (
	"fmt"
	"sort"
	"time"

	"lavadero/internal/entities"
	"lavadero/internal/utils"
)

// Reconcile merges the fixed slot definitions, the admin-blocked slots, and
// the concrete booking events for an inclusive date range into one unified
// event collection. For every (date, slot) pair exactly one event comes out:
//
//   - a booking event whose start matches the pair exactly wins the pair;
//     admin-created events (blocks masquerading as orders) resolve to
//     SlotBlocked, real orders to SlotBooked
//   - otherwise a slot start listed in the day's occupied set is SlotBlocked
//   - otherwise the pair is SlotFree
//
// Booking events that match no slot definition are emitted as standalone
// events rather than dropped. The output is sorted by start time so identical
// inputs always produce identical output, regardless of input ordering.
func Reconcile(start, end time.Time, slotDefs []entities.SlotDef, days []entities.DayAvailability, events []entities.BookingEvent) []entities.ReconciledSlotEvent {
	occupied := make(map[string]map[string]bool, len(days))
	for _, day := range days {
		date := utils.DateKey(day.Date)
		if occupied[date] == nil {
			occupied[date] = make(map[string]bool, len(day.OccupiedSlots))
		}
		for _, slot := range day.OccupiedSlots {
			occupied[date][utils.SlotStart(slot)] = true
		}
	}

	// Pre-sort events so duplicate claims on the same pair resolve the same
	// way on every pass.
	sorted := make([]entities.BookingEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return sorted[i].ID < sorted[j].ID
	})

	type slotKey struct{ date, slot string }
	byPair := make(map[slotKey]*entities.BookingEvent, len(sorted))
	var extras []*entities.BookingEvent
	for i := range sorted {
		ev := &sorted[i]
		key := slotKey{utils.DateKey(ev.Start), ev.Start.Format("15:04")}
		if _, taken := byPair[key]; taken {
			extras = append(extras, ev)
			continue
		}
		byPair[key] = ev
	}

	var out []entities.ReconciledSlotEvent
	matched := make(map[slotKey]bool)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dateKey := utils.DateKey(date)
		for _, def := range slotDefs {
			key := slotKey{dateKey, def.Start}
			slotStart, err := utils.CombineDateSlot(date, def.Start)
			if err != nil {
				continue
			}
			slotEnd, err := utils.CombineDateSlot(date, def.End)
			if err != nil {
				continue
			}

			if ev, ok := byPair[key]; ok {
				matched[key] = true
				out = append(out, fromEvent(ev))
				continue
			}
			if occupied[dateKey][def.Start] {
				out = append(out, entities.ReconciledSlotEvent{
					ID:    fmt.Sprintf("blocked-%s-%s", dateKey, def.Start),
					Title: "No disponible",
					Start: slotStart,
					End:   slotEnd,
					State: entities.SlotBlocked,
					Date:  dateKey,
					Slot:  def.Start,
				})
				continue
			}
			out = append(out, entities.ReconciledSlotEvent{
				ID:    fmt.Sprintf("free-%s-%s", dateKey, def.Start),
				Title: "Disponible",
				Start: slotStart,
				End:   slotEnd,
				State: entities.SlotFree,
				Date:  dateKey,
				Slot:  def.Start,
			})
		}
	}

	// Events outside the slot universe (irregular start times, dates outside
	// the range, or duplicate claims) still come from the backend and must
	// not be lost.
	for key, ev := range byPair {
		if !matched[key] {
			out = append(out, fromEvent(ev))
		}
	}
	for _, ev := range extras {
		out = append(out, fromEvent(ev))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		if !out[i].End.Equal(out[j].End) {
			return out[i].End.Before(out[j].End)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func fromEvent(ev *entities.BookingEvent) entities.ReconciledSlotEvent {
	state := entities.SlotBooked
	if ev.AdminCreated {
		// Reserved by staff with no order attached: behaves like a block.
		state = entities.SlotBlocked
	}
	return entities.ReconciledSlotEvent{
		ID:    ev.ID,
		Title: ev.Title,
		Start: ev.Start,
		End:   ev.End,
		State: state,
		Date:  utils.DateKey(ev.Start),
		Slot:  ev.Start.Format("15:04"),
		Event: ev,
	}
}
