package dto

// BookingCreateRequest is the create-booking payload
type BookingCreateRequest struct {
	TrainID         string `json:"train_id"`
	PassengerName   string `json:"passenger_name"`
	PassengerAge    int    `json:"passenger_age"`
	PassengerGender string `json:"passenger_gender"`
	PassengerPhone  string `json:"passenger_phone"`
}

// BookingOutcome is the create-booking response. Status selects the branch:
// a confirmed outcome carries a seat, a waiting one carries the queue
// position. The PNR is present either way.
type BookingOutcome struct {
	Status     string  `json:"status"`
	PNR        string  `json:"pnr,omitempty"`
	Position   int     `json:"position,omitempty"`
	SeatNumber *string `json:"seat_number,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// Confirmed reports whether the server allocated a seat.
func (o *BookingOutcome) Confirmed() bool {
	return o.Status == "confirmed"
}

// CancelResponse is the cancel-booking response
type CancelResponse struct {
	Message string `json:"message"`
}
