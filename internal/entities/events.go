package entities

import "time"

// CalendarEvent is the wire shape of one processed event from
// GET /day/processed-events-range. The backend ships them already shaped for
// the calendar widget, with the order detail tucked into extendedProps.
type CalendarEvent struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Start         string     `json:"start"`
	End           string     `json:"end"`
	ExtendedProps EventProps `json:"extendedProps"`
}

type EventProps struct {
	Client       EventClient  `json:"cliente"`
	Vehicle      EventVehicle `json:"vehiculo"`
	ServiceName  string       `json:"servicio"`
	CarTypeName  string       `json:"tipoAuto"`
	Total        float64      `json:"total"`
	OrderID      int          `json:"orderId"`
	ServiceID    int          `json:"serviceId"`
	CarTypeID    int          `json:"carTypeId"`
	AdminCreated bool         `json:"admin_created"`
}

type EventClient struct {
	Firstname string `json:"nombre"`
	Lastname  string `json:"apellido"`
	Phone     string `json:"phone"`
}

type EventVehicle struct {
	Make  string `json:"marca"`
	Model string `json:"modelo"`
}

// BookingEvent is a concrete reservation with parsed times, either created by
// a client through the public booking flow or by an admin directly.
// AdminCreated marks slots an admin reserved without an order attached.
type BookingEvent struct {
	ID           string
	Title        string
	Start        time.Time
	End          time.Time
	Client       EventClient
	Vehicle      EventVehicle
	ServiceName  string
	CarTypeName  string
	Total        float64
	OrderID      int
	ServiceID    int
	CarTypeID    int
	AdminCreated bool
}
