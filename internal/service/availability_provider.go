package service

import (
	"context"
	"errors"
	"sync"

	"lavadero/internal/apierr"
	"lavadero/internal/entities"
	"lavadero/internal/repository"
	"lavadero/internal/utils"

	"go.uber.org/zap"
)

// ErrSuperseded reports that a newer FetchRange started while this one was in
// flight; the stale result was discarded.
var ErrSuperseded = errors.New("availability fetch superseded by a newer request")

// AvailabilitySnapshot is the raw material for one reconciliation pass.
type AvailabilitySnapshot struct {
	StartDate string
	EndDate   string
	Days      []entities.DayAvailability
	Events    []entities.BookingEvent
}

// AvailabilityProvider fetches day availability and booking events for a date
// range. Calls are safe to race: each fetch takes a monotonically increasing
// turn number, and only the newest turn may publish its result, so an old
// in-flight response can never clobber a newer one.
type AvailabilityProvider struct {
	days repository.DayRepository
	log  *zap.Logger

	mu       sync.Mutex
	turn     uint64
	snapshot *AvailabilitySnapshot
}

func NewAvailabilityProvider(days repository.DayRepository, log *zap.Logger) *AvailabilityProvider {
	return &AvailabilityProvider{days: days, log: log}
}

// FetchRange loads both availability and events for the inclusive date range.
// On any failure the cached snapshot is cleared rather than left stale: an
// error means "authoritative but empty", never "keep showing old data".
func (p *AvailabilityProvider) FetchRange(ctx context.Context, startDate, endDate string) (*AvailabilitySnapshot, error) {
	if startDate == "" || endDate == "" {
		return nil, apierr.Validation("missing date range bounds")
	}

	p.mu.Lock()
	p.turn++
	myTurn := p.turn
	p.mu.Unlock()

	days, daysErr := p.days.AvailabilityRange(ctx, startDate, endDate)
	var rawEvents []entities.CalendarEvent
	var eventsErr error
	if daysErr == nil {
		rawEvents, eventsErr = p.days.ProcessedEventsRange(ctx, startDate, endDate)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if myTurn != p.turn {
		return nil, ErrSuperseded
	}

	if daysErr != nil {
		p.snapshot = nil
		return nil, apierr.Wrap(daysErr, "fetching day availability")
	}
	if eventsErr != nil {
		p.snapshot = nil
		return nil, apierr.Wrap(eventsErr, "fetching calendar events")
	}

	snap := &AvailabilitySnapshot{
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
		Events:    p.parseEvents(rawEvents),
	}
	p.snapshot = snap
	return snap, nil
}

// Snapshot returns the last successfully fetched snapshot, or nil.
func (p *AvailabilityProvider) Snapshot() *AvailabilitySnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

func (p *AvailabilityProvider) parseEvents(raw []entities.CalendarEvent) []entities.BookingEvent {
	events := make([]entities.BookingEvent, 0, len(raw))
	for _, ev := range raw {
		start, err := utils.ParseEventTime(ev.Start)
		if err != nil {
			p.log.Warn("skipping event with unparsable start", zap.String("id", ev.ID), zap.String("start", ev.Start))
			continue
		}
		end, err := utils.ParseEventTime(ev.End)
		if err != nil {
			end = start
		}
		events = append(events, entities.BookingEvent{
			ID:           ev.ID,
			Title:        ev.Title,
			Start:        start,
			End:          end,
			Client:       ev.ExtendedProps.Client,
			Vehicle:      ev.ExtendedProps.Vehicle,
			ServiceName:  ev.ExtendedProps.ServiceName,
			CarTypeName:  ev.ExtendedProps.CarTypeName,
			Total:        ev.ExtendedProps.Total,
			OrderID:      ev.ExtendedProps.OrderID,
			ServiceID:    ev.ExtendedProps.ServiceID,
			CarTypeID:    ev.ExtendedProps.CarTypeID,
			AdminCreated: ev.ExtendedProps.AdminCreated,
		})
	}
	return events
}
