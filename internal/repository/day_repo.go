package repository

import (
	"context"
	"fmt"
	"net/url"

	"lavadero/internal/entities"
	"lavadero/internal/gateway"
)

// DayRepository covers the per-day slot surface of the upstream API: blocked
// slots per date and the pre-processed calendar events for a range.
type DayRepository interface {
	AvailabilityRange(ctx context.Context, startDate, endDate string) ([]entities.DayAvailability, error)
	ProcessedEventsRange(ctx context.Context, startDate, endDate string) ([]entities.CalendarEvent, error)
	AddSlot(ctx context.Context, date, slot string) error
	RemoveSlot(ctx context.Context, date, slot string) error
}

type dayRepository struct {
	gw *gateway.Client
}

func NewDayRepository(gw *gateway.Client) DayRepository {
	return &dayRepository{gw: gw}
}

func rangeQuery(startDate, endDate string) string {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	return q.Encode()
}

func (r *dayRepository) AvailabilityRange(ctx context.Context, startDate, endDate string) ([]entities.DayAvailability, error) {
	var days []entities.DayAvailability
	path := fmt.Sprintf("/day/availability-range?%s", rangeQuery(startDate, endDate))
	if err := r.gw.GetJSON(ctx, path, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *dayRepository) ProcessedEventsRange(ctx context.Context, startDate, endDate string) ([]entities.CalendarEvent, error) {
	var events []entities.CalendarEvent
	path := fmt.Sprintf("/day/processed-events-range?%s", rangeQuery(startDate, endDate))
	if err := r.gw.GetJSON(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AddSlot blocks a slot. The slot travels as a 24-hour "HH:MM" string.
func (r *dayRepository) AddSlot(ctx context.Context, date, slot string) error {
	body := map[string]string{"date": date, "slot": slot}
	return r.gw.PostJSON(ctx, "/day/add-slot", body, nil)
}

// RemoveSlot unblocks a previously blocked slot.
func (r *dayRepository) RemoveSlot(ctx context.Context, date, slot string) error {
	body := map[string]string{"date": date, "slot": slot}
	return r.gw.PostJSON(ctx, "/day/remove-slot", body, nil)
}
