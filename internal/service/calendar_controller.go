package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"lavadero/internal/apierr"
	"lavadero/internal/entities"
	"lavadero/internal/utils"

	"go.uber.org/zap"
)

// CalendarView mirrors the calendar widget's view modes.
type CalendarView string

const (
	ViewMonth CalendarView = "dayGridMonth"
	ViewWeek  CalendarView = "timeGridWeek"
	ViewDay   CalendarView = "timeGridDay"
)

// ClickAction tells the UI which workflow a click on a slot opens.
type ClickAction string

const (
	// ActionBookOrBlock: free slot, offer the book-or-block choice.
	ActionBookOrBlock ClickAction = "book_or_block"
	// ActionConfirmUnblock: admin-blocked slot, offer to free it again.
	ActionConfirmUnblock ClickAction = "confirm_unblock"
	// ActionShowOrder: booked slot, open the order details.
	ActionShowOrder ClickAction = "show_order"
)

var ErrEventNotFound = errors.New("no event with that id in the current snapshot")

// VisibleRange translates a view mode and anchor date into the actual
// rendered date span. Weeks start on Monday; the month grid includes the
// leading and trailing days of adjacent months needed to fill whole weeks.
func VisibleRange(view CalendarView, anchor time.Time) (time.Time, time.Time) {
	anchor = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	switch view {
	case ViewWeek:
		start := startOfWeek(anchor)
		return start, start.AddDate(0, 0, 6)
	case ViewDay:
		return anchor, anchor
	default:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		last := first.AddDate(0, 1, -1)
		return startOfWeek(first), endOfWeek(last)
	}
}

func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset)
}

func endOfWeek(t time.Time) time.Time {
	return startOfWeek(t).AddDate(0, 0, 6)
}

// CalendarController owns the reconciled slot list. The list is a pure
// function of the latest fetched snapshot: it is replaced wholesale after
// every fetch and never patched in place.
type CalendarController struct {
	provider *AvailabilityProvider
	slotDefs []entities.SlotDef
	log      *zap.Logger

	mu         sync.RWMutex
	rangeStart time.Time
	rangeEnd   time.Time
	lastStart  string
	lastEnd    string
	events     []entities.ReconciledSlotEvent
}

func NewCalendarController(provider *AvailabilityProvider, slotDefs []entities.SlotDef, log *zap.Logger) *CalendarController {
	if len(slotDefs) == 0 {
		slotDefs = entities.DefaultSlotDefs
	}
	return &CalendarController{provider: provider, slotDefs: slotDefs, log: log}
}

// SetVisibleRange recomputes the rendered span for the given view and fetches
// it, unless the ISO bounds are identical to the last fetched range, in which
// case the current snapshot is kept and no request goes out.
func (c *CalendarController) SetVisibleRange(ctx context.Context, view CalendarView, anchor time.Time) error {
	start, end := VisibleRange(view, anchor)
	startKey, endKey := utils.DateKey(start), utils.DateKey(end)

	c.mu.RLock()
	unchanged := startKey == c.lastStart && endKey == c.lastEnd
	c.mu.RUnlock()
	if unchanged {
		return nil
	}
	return c.load(ctx, start, end)
}

// Refresh refetches the current range and rebuilds the event list. Called
// after every successful mutation and by the manual refresh button.
func (c *CalendarController) Refresh(ctx context.Context) error {
	c.mu.RLock()
	start, end := c.rangeStart, c.rangeEnd
	fetched := c.lastStart != ""
	c.mu.RUnlock()
	if !fetched {
		return nil
	}
	return c.load(ctx, start, end)
}

func (c *CalendarController) load(ctx context.Context, start, end time.Time) error {
	startKey, endKey := utils.DateKey(start), utils.DateKey(end)
	snap, err := c.provider.FetchRange(ctx, startKey, endKey)
	if errors.Is(err, ErrSuperseded) {
		// A newer fetch is in flight; its result will install itself.
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.rangeStart, c.rangeEnd = start, end
	c.lastStart, c.lastEnd = startKey, endKey
	if err != nil {
		// Never show stale events as current: an error empties the calendar.
		c.events = nil
		c.log.Warn("calendar fetch failed, clearing events", zap.String("start", startKey), zap.String("end", endKey), zap.Error(err))
		return err
	}
	c.events = Reconcile(start, end, c.slotDefs, snap.Days, snap.Events)
	return nil
}

// Events returns a copy of the current reconciled list.
func (c *CalendarController) Events() []entities.ReconciledSlotEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entities.ReconciledSlotEvent, len(c.events))
	copy(out, c.events)
	return out
}

// EventByID finds one entry of the current snapshot.
func (c *CalendarController) EventByID(id string) (entities.ReconciledSlotEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ev := range c.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return entities.ReconciledSlotEvent{}, false
}

// ClickAction resolves which workflow a click on the given event opens,
// driven purely by the event's reconciled state.
func (c *CalendarController) ClickAction(id string) (ClickAction, entities.ReconciledSlotEvent, error) {
	ev, ok := c.EventByID(id)
	if !ok {
		return "", entities.ReconciledSlotEvent{}, apierr.NotFound(ErrEventNotFound.Error())
	}
	switch ev.State {
	case entities.SlotFree:
		return ActionBookOrBlock, ev, nil
	case entities.SlotBlocked:
		return ActionConfirmUnblock, ev, nil
	default:
		return ActionShowOrder, ev, nil
	}
}
