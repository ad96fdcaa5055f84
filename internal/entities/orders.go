package entities

// OrderCart mirrors the cart object the public booking flow sends, reused by
// POST /order/admin. Total travels as a plain string, without currency symbol.
type OrderCart struct {
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Total     string `json:"total"`
	Service   string `json:"service"`
	ServiceID int    `json:"serviceId"`
}

type CreateOrderRequest struct {
	Email     string    `json:"email"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Cart      OrderCart `json:"cart"`
	ClientID  int       `json:"ClientId"`
	ServiceID int       `json:"ServiceId"`
	CarTypeID int       `json:"CarTypeId"`
}

// UpdateOrderRequest is a partial update: each field is independently
// optional so a caller can change one attribute without resending the other.
type UpdateOrderRequest struct {
	ServiceID *int `json:"ServiceId,omitempty"`
	CarTypeID *int `json:"CarTypeId,omitempty"`
}
