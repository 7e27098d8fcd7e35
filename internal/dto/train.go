package dto

import "strings"

// TrainCreateRequest is the create-train payload (admin only)
type TrainCreateRequest struct {
	TrainNumber   string  `json:"train_number"`
	TrainName     string  `json:"train_name"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	TotalSeats    int     `json:"total_seats"`
	Fare          float64 `json:"fare"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
}

// Validate checks the create-train fields before submission
func (r *TrainCreateRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.TrainNumber) == "" || strings.TrimSpace(r.TrainName) == "" {
		return false, "Train number and name are required"
	}
	if strings.TrimSpace(r.Source) == "" || strings.TrimSpace(r.Destination) == "" {
		return false, "Source and destination are required"
	}
	if r.TotalSeats <= 0 {
		return false, "Total seats must be a positive integer"
	}
	if r.Fare < 0 {
		return false, "Fare cannot be negative"
	}
	return true, ""
}

// SummaryReport is the admin aggregate statistics response
type SummaryReport struct {
	TotalTrains       int     `json:"total_trains"`
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	WaitingBookings   int     `json:"waiting_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalSeats        int     `json:"total_seats"`
	AvailableSeats    int     `json:"available_seats"`
	TotalRevenue      float64 `json:"total_revenue"`
}
