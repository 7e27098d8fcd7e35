package domain

import (
	"strconv"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusWaiting   BookingStatus = "waiting"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusWaiting, BookingStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// Gender values accepted for a passenger record
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "Other"
)

// Booking represents a booking entity as reported by the server. Status is
// never inferred client-side.
type Booking struct {
	ID              string        `json:"id"`
	PNR             string        `json:"pnr"`
	Username        string        `json:"username"`
	TrainID         string        `json:"train_id"`
	TrainName       string        `json:"train_name"`
	TrainNumber     string        `json:"train_number"`
	PassengerName   string        `json:"passenger_name"`
	PassengerAge    int           `json:"passenger_age"`
	PassengerGender string        `json:"passenger_gender"`
	PassengerPhone  string        `json:"passenger_phone"`
	SeatNumber      *string       `json:"seat_number"`
	BookingStatus   BookingStatus `json:"booking_status"`
	Position        int           `json:"position,omitempty"`
	Source          string        `json:"source"`
	Destination     string        `json:"destination"`
	Fare            float64       `json:"fare"`
	BookingDate     time.Time     `json:"booking_date"`
}

// CanCancel reports whether the cancel action is offered for this booking.
// Only confirmed bookings are cancellable.
func (b *Booking) CanCancel() bool {
	return b.BookingStatus == BookingStatusConfirmed
}

// Seat returns the assigned seat number, or a placeholder while the booking
// is on the waiting list.
func (b *Booking) Seat() string {
	if b.SeatNumber == nil {
		return "-"
	}
	return *b.SeatNumber
}

// PassengerForm is the validated passenger record submitted with a booking
// request. Age is parsed from user input before it reaches this struct.
type PassengerForm struct {
	Name   string
	Age    int
	Gender string
	Phone  string
}

// Validate validates the passenger form fields
func (f *PassengerForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyName
	}
	if f.Age <= 0 {
		return ErrInvalidAge
	}
	switch f.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return ErrInvalidGender
	}
	if strings.TrimSpace(f.Phone) == "" {
		return ErrEmptyPhone
	}
	return nil
}

// ParseAge converts raw age input into an integer. Non-numeric input is a
// client-side validation failure and is never transmitted.
func ParseAge(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || age <= 0 {
		return 0, ErrInvalidAge
	}
	return age, nil
}

// NormalizePNR trims and upper-cases a reference string for lookup.
func NormalizePNR(raw string) (string, error) {
	pnr := strings.ToUpper(strings.TrimSpace(raw))
	if pnr == "" {
		return "", ErrEmptyPNR
	}
	return pnr, nil
}
