package api

import (
	"time"

	"lavadero/internal/entities"
)

// Auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginResponse struct {
	User entities.AdminUser `json:"user"`
}

// Agenda
type AgendaEventsRequest struct {
	View string `json:"view"`
	Date string `json:"date"`
}

// AgendaEvent is one calendar entry as the admin UI renders it, with the
// color coding the original calendar used per state.
type AgendaEvent struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Start           string        `json:"start"`
	End             string        `json:"end"`
	State           string        `json:"state"`
	Date            string        `json:"date"`
	Slot            string        `json:"slot"`
	BackgroundColor string        `json:"backgroundColor"`
	BorderColor     string        `json:"borderColor"`
	Order           *OrderDetails `json:"order,omitempty"`
}

type OrderDetails struct {
	OrderID      int     `json:"orderId"`
	ClientName   string  `json:"clientName"`
	ClientPhone  string  `json:"clientPhone"`
	VehicleMake  string  `json:"vehicleMake"`
	VehicleModel string  `json:"vehicleModel"`
	Service      string  `json:"service"`
	ServiceID    int     `json:"serviceId"`
	CarType      string  `json:"carType"`
	CarTypeID    int     `json:"carTypeId"`
	Total        float64 `json:"total"`
	AdminCreated bool    `json:"admin_created"`
}

type SlotRequest struct {
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Confirm bool   `json:"confirm"`
}

type CreateBookingRequest struct {
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	ClientID    int    `json:"clientId"`
	Email       string `json:"email"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	ServiceID   int    `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	CarTypeID   int    `json:"carTypeId"`
	Confirm     bool   `json:"confirm"`
}

type UpdateBookingRequest struct {
	ServiceID *int `json:"serviceId,omitempty"`
	CarTypeID *int `json:"carTypeId,omitempty"`
	Confirm   bool `json:"confirm"`
}

// Catalog
type CreateServiceRequest struct {
	Name string `json:"name"`
}
type UpdateServicePriceRequest struct {
	Price float64 `json:"price"`
}

func toAgendaEvent(ev entities.ReconciledSlotEvent) AgendaEvent {
	out := AgendaEvent{
		ID:    ev.ID,
		Title: ev.Title,
		Start: ev.Start.Format(time.RFC3339),
		End:   ev.End.Format(time.RFC3339),
		State: ev.State.String(),
		Date:  ev.Date,
		Slot:  ev.Slot,
	}
	switch ev.State {
	case entities.SlotFree:
		out.BackgroundColor, out.BorderColor = "#28a745", "#1e7e34"
	case entities.SlotBlocked:
		out.BackgroundColor, out.BorderColor = "#dc3545", "#c82333"
	default:
		out.BackgroundColor, out.BorderColor = "#0097a7", "#007c91"
	}
	if ev.Event != nil && !ev.Event.AdminCreated {
		out.Order = &OrderDetails{
			OrderID:      ev.Event.OrderID,
			ClientName:   ev.Event.Client.Firstname + " " + ev.Event.Client.Lastname,
			ClientPhone:  ev.Event.Client.Phone,
			VehicleMake:  ev.Event.Vehicle.Make,
			VehicleModel: ev.Event.Vehicle.Model,
			Service:      ev.Event.ServiceName,
			ServiceID:    ev.Event.ServiceID,
			CarType:      ev.Event.CarTypeName,
			CarTypeID:    ev.Event.CarTypeID,
			Total:        ev.Event.Total,
			AdminCreated: ev.Event.AdminCreated,
		}
	}
	return out
}
