package console

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/divyam007142/Railway-reservation/internal/domain"
)

// showLedger renders the identity's bookings from the last fetched
// snapshot. The server filters by session; the client never does.
func (v *passengerView) showLedger() {
	if len(v.bookings) == 0 {
		v.c.term.Notice("No bookings yet")
		return
	}

	w := tabwriter.NewWriter(v.c.term.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PNR\tTRAIN\tPASSENGER\tSEAT\tROUTE\tFARE\tSTATUS")
	for _, b := range v.bookings {
		status := string(b.BookingStatus)
		if b.BookingStatus == domain.BookingStatusWaiting && b.Position > 0 {
			status = fmt.Sprintf("%s (#%d)", b.BookingStatus, b.Position)
		}
		fmt.Fprintf(w, "%s\t%s (%s)\t%s\t%s\t%s → %s\t%.2f\t%s\n",
			b.PNR, b.TrainName, b.TrainNumber, b.PassengerName, b.Seat(),
			b.Source, b.Destination, b.Fare, status)
	}
	w.Flush()
}

// cancelBooking drives the cancellation sub-flow. Only confirmed bookings
// are offered; waiting and already-cancelled entries have no cancel action.
func (v *passengerView) cancelBooking(ctx context.Context) {
	var cancellable []domain.Booking
	for _, b := range v.bookings {
		if b.CanCancel() {
			cancellable = append(cancellable, b)
		}
	}
	if len(cancellable) == 0 {
		v.c.term.Notice("No confirmed bookings to cancel")
		return
	}

	v.c.term.Printf("Confirmed bookings:")
	for _, b := range cancellable {
		v.c.term.Printf("  %s  %s (%s)  seat %s", b.PNR, b.TrainName, b.TrainNumber, b.Seat())
	}

	pnr, err := domain.NormalizePNR(v.c.term.Prompt("PNR to cancel (blank to go back)"))
	if err != nil {
		return
	}
	found := false
	for _, b := range cancellable {
		if b.PNR == pnr {
			found = true
			break
		}
	}
	if !found {
		v.c.term.Failure("No confirmed booking with that PNR")
		return
	}

	confirmed, resp, err := v.flow.Cancel(ctx, pnr)
	if !confirmed {
		return
	}
	if err != nil {
		if v.c.guard.HandleAPIError(err) {
			v.c.term.Failure("Session expired, please login again")
			return
		}
		v.c.term.Failure("Cancellation failed")
		return
	}

	if resp != nil && resp.Message != "" {
		v.c.term.Success("%s", resp.Message)
	} else {
		v.c.term.Success("Booking cancelled")
	}
}
