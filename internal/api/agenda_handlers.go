package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"lavadero/internal/entities"
	"lavadero/internal/service"

	"github.com/gorilla/mux"
)

type AgendaHandler struct {
	Calendar *service.CalendarController
	Agenda   *service.AgendaService
}

func NewAgendaHandler(calendar *service.CalendarController, agenda *service.AgendaService) *AgendaHandler {
	return &AgendaHandler{Calendar: calendar, Agenda: agenda}
}

// Events returns the reconciled slot list for the visible range. The UI
// passes its view mode and anchor date; the controller translates that into
// the actual rendered span and only refetches when the span changed.
func (h *AgendaHandler) Events(w http.ResponseWriter, r *http.Request) {
	view := service.CalendarView(r.URL.Query().Get("view"))
	if view == "" {
		view = service.ViewMonth
	}
	anchor := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}
		anchor = parsed
	}

	if err := h.Calendar.SetVisibleRange(r.Context(), view, anchor); err != nil {
		writeError(w, err)
		return
	}
	h.writeEvents(w)
}

// Refresh refetches the current range, backing the UI's refresh button.
func (h *AgendaHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Calendar.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeEvents(w)
}

func (h *AgendaHandler) writeEvents(w http.ResponseWriter) {
	events := h.Calendar.Events()
	out := make([]AgendaEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, toAgendaEvent(ev))
	}
	writeJSON(w, http.StatusOK, out)
}

// ClickAction resolves which workflow a click on an event opens.
func (h *AgendaHandler) ClickAction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	action, ev, err := h.Calendar.ClickAction(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"action": action,
		"event":  toAgendaEvent(ev),
	})
}

func (h *AgendaHandler) BlockSlot(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Agenda.BlockSlot(r.Context(), confirmerFor(req.Confirm), req.Date, req.Slot); err != nil {
		writeError(w, err)
		return
	}
	h.refreshAfterMutation(r)
	writeMessage(w, http.StatusOK, "Slot marcado como no disponible exitosamente")
}

func (h *AgendaHandler) UnblockSlot(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Agenda.UnblockSlot(r.Context(), confirmerFor(req.Confirm), req.Date, req.Slot); err != nil {
		writeError(w, err)
		return
	}
	h.refreshAfterMutation(r)
	writeMessage(w, http.StatusOK, "Slot marcado como disponible exitosamente")
}

func (h *AgendaHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	input := service.BookingInput{
		Date:        req.Date,
		Slot:        req.Slot,
		ClientID:    req.ClientID,
		Email:       req.Email,
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		CarTypeID:   req.CarTypeID,
	}
	price, err := h.Agenda.CreateBooking(r.Context(), confirmerFor(req.Confirm), input)
	if err != nil {
		writeError(w, err)
		return
	}
	h.refreshAfterMutation(r)
	writeJSON(w, http.StatusOK, map[string]any{"message": "Orden creada exitosamente", "total": price})
}

func (h *AgendaHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// The effective pair after the edit drives the price re-query; fall back
	// to the stored booking for whichever dimension didn't change.
	effCarType, effService := 0, 0
	if ev, ok := h.findOrderEvent(orderID); ok {
		effCarType, effService = ev.Event.CarTypeID, ev.Event.ServiceID
	}
	if req.CarTypeID != nil {
		effCarType = *req.CarTypeID
	}
	if req.ServiceID != nil {
		effService = *req.ServiceID
	}

	fields := entities.UpdateOrderRequest{ServiceID: req.ServiceID, CarTypeID: req.CarTypeID}
	price, err := h.Agenda.UpdateBooking(r.Context(), confirmerFor(req.Confirm), orderID, fields, effCarType, effService)
	if err != nil {
		writeError(w, err)
		return
	}
	h.refreshAfterMutation(r)
	resp := map[string]any{"message": "Orden actualizada exitosamente"}
	if price != nil {
		resp["total"] = *price
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AgendaHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	confirm := r.URL.Query().Get("confirm") == "true"
	if err := h.Agenda.DeleteBooking(r.Context(), confirmerFor(confirm), orderID, vars["date"], vars["slot"]); err != nil {
		writeError(w, err)
		return
	}
	h.refreshAfterMutation(r)
	writeMessage(w, http.StatusOK, "Orden eliminada exitosamente")
}

func (h *AgendaHandler) findOrderEvent(orderID int) (entities.ReconciledSlotEvent, bool) {
	for _, ev := range h.Calendar.Events() {
		if ev.Event != nil && ev.Event.OrderID == orderID {
			return ev, true
		}
	}
	return entities.ReconciledSlotEvent{}, false
}

// refreshAfterMutation re-derives the slot list after a successful mutation.
// A failure here is not the mutation's failure: the write landed, so only log
// through the controller and let the UI's next fetch catch up.
func (h *AgendaHandler) refreshAfterMutation(r *http.Request) {
	_ = h.Calendar.Refresh(r.Context())
}
