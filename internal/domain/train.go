package domain

import "strings"

// Train represents a train inventory record. Seat counts are
// server-authoritative; the client only displays the last fetched values.
type Train struct {
	ID             string  `json:"id"`
	TrainNumber    string  `json:"train_number"`
	TrainName      string  `json:"train_name"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	TotalSeats     int     `json:"total_seats"`
	AvailableSeats int     `json:"available_seats"`
	Fare           float64 `json:"fare"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
}

// HasSeats reports whether the last fetched snapshot showed at least one
// free seat. Advisory only: the server decides confirmed vs waiting.
func (t *Train) HasSeats() bool {
	return t.AvailableSeats > 0
}

// Validate validates the train fields
func (t *Train) Validate() error {
	if strings.TrimSpace(t.TrainNumber) == "" {
		return ErrInvalidTrain
	}
	if strings.TrimSpace(t.TrainName) == "" {
		return ErrInvalidTrain
	}
	if strings.TrimSpace(t.Source) == "" || strings.TrimSpace(t.Destination) == "" {
		return ErrInvalidTrain
	}
	if t.TotalSeats <= 0 {
		return ErrInvalidTrain
	}
	if t.AvailableSeats < 0 || t.AvailableSeats > t.TotalSeats {
		return ErrInvalidTrain
	}
	if t.Fare < 0 {
		return ErrInvalidTrain
	}
	return nil
}
