package console

import (
	"context"

	"github.com/divyam007142/Railway-reservation/internal/domain"
)

// lookupPNR resolves a reference code to its booking. No auth required.
// The return value replaces any previously shown result: a failed lookup
// yields nil, so a stale result is never shown next to a failure notice.
func (c *Console) lookupPNR(ctx context.Context) *domain.Booking {
	pnr, err := domain.NormalizePNR(c.term.Prompt("Enter PNR number"))
	if err != nil {
		c.term.Failure("Please enter PNR number")
		return nil
	}

	booking, lookupErr := c.client.LookupPNR(ctx, pnr)
	if lookupErr != nil {
		c.term.Failure("Booking not found")
		return nil
	}

	c.term.Success("Booking found!")
	c.renderBookingDetail(booking)
	return booking
}

func (c *Console) renderBookingDetail(b *domain.Booking) {
	c.term.Printf("PNR:        %s", b.PNR)
	c.term.Printf("Status:     %s", b.BookingStatus)
	if b.BookingStatus == domain.BookingStatusWaiting && b.Position > 0 {
		c.term.Printf("Position:   %d", b.Position)
	}
	c.term.Printf("Train:      %s (%s)", b.TrainName, b.TrainNumber)
	c.term.Printf("Passenger:  %s, %d, %s", b.PassengerName, b.PassengerAge, b.PassengerGender)
	c.term.Printf("Route:      %s → %s", b.Source, b.Destination)
	c.term.Printf("Seat:       %s", b.Seat())
	c.term.Printf("Fare:       %.2f", b.Fare)
	c.term.Printf("Booked at:  %s", b.BookingDate.Format("2006-01-02 15:04"))
}
