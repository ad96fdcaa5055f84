package entities

// Client is one roster entry.
type Client struct {
	ID        int        `json:"id"`
	Firstname string     `json:"firstname"`
	Lastname  string     `json:"lastname"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Car       *ClientCar `json:"car,omitempty"`
}

type ClientCar struct {
	Make      string `json:"marca"`
	Model     string `json:"modelo"`
	CarTypeID int    `json:"carTypeId"`
}

type Service struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CarType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ServicePrice is one row of the price table: what a service costs for a
// given vehicle type.
type ServicePrice struct {
	ID        int     `json:"id"`
	ServiceID int     `json:"ServiceId"`
	CarTypeID int     `json:"CarTypeId"`
	Price     float64 `json:"price"`
}

// PriceResponse is the body of GET /service-price/car-type/{ct}/service/{s}.
type PriceResponse struct {
	Price float64 `json:"price"`
}

// NewClientsByMonth feeds the dashboard chart.
type NewClientsByMonth struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
