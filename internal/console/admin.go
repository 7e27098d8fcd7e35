package console

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"text/tabwriter"

	"github.com/divyam007142/Railway-reservation/internal/api"
	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/dto"
)

// adminView holds the admin console state
type adminView struct {
	c *Console

	trains   []domain.Train
	bookings []domain.Booking
	summary  *dto.SummaryReport
}

func (c *Console) adminDashboard(ctx context.Context) {
	sess, err := c.guard.Require(domain.RoleAdmin)
	if err != nil {
		// Wrong or missing role: back to the entry screen. Teardown is
		// reserved for 401s and explicit logout.
		return
	}

	v := &adminView{c: c}
	if !v.load(ctx) {
		return
	}

	c.term.Printf("")
	c.term.Printf("Welcome, %s (admin)", sess.Identity.FullName)

	for {
		if c.store.Current() == nil || c.term.EOF() {
			return
		}

		c.term.Printf("")
		c.term.Printf("--- Admin Console ---")
		c.term.Printf("  1) Overview")
		c.term.Printf("  2) Trains")
		c.term.Printf("  3) Add train")
		c.term.Printf("  4) Delete train")
		c.term.Printf("  5) All bookings")
		c.term.Printf("  l) Logout")

		switch c.term.Prompt("Select") {
		case "1":
			v.showSummary()
		case "2":
			v.showTrains()
		case "3":
			v.addTrain(ctx)
		case "4":
			v.deleteTrain(ctx)
		case "5":
			v.showBookings()
		case "l", "L":
			c.guard.Logout()
			c.term.Notice("Logged out successfully")
			return
		}
	}
}

// load issues the three initial fetches concurrently; the console is not
// ready until all resolve.
func (v *adminView) load(ctx context.Context) bool {
	var wg sync.WaitGroup
	var trainsErr, bookingsErr, summaryErr error

	wg.Add(3)
	go func() {
		defer wg.Done()
		v.trains, trainsErr = v.c.client.ListTrains(ctx)
	}()
	go func() {
		defer wg.Done()
		v.bookings, bookingsErr = v.c.client.AllBookings(ctx)
	}()
	go func() {
		defer wg.Done()
		v.summary, summaryErr = v.c.client.SummaryReport(ctx)
	}()
	wg.Wait()

	for _, err := range []error{trainsErr, bookingsErr, summaryErr} {
		if v.c.guard.HandleAPIError(err) {
			v.c.term.Failure("Session expired, please login again")
			return false
		}
	}
	if trainsErr != nil || bookingsErr != nil || summaryErr != nil {
		v.c.term.Failure("Failed to load data")
	}
	return true
}

// reload re-fetches everything after a mutation; authoritative state always
// comes back from the server.
func (v *adminView) reload(ctx context.Context) {
	v.load(ctx)
}

func (v *adminView) showSummary() {
	if v.summary == nil {
		v.c.term.Notice("No summary available")
		return
	}
	s := v.summary
	v.c.term.Printf("Trains:             %d", s.TotalTrains)
	v.c.term.Printf("Seats (available):  %d/%d", s.AvailableSeats, s.TotalSeats)
	v.c.term.Printf("Bookings:           %d", s.TotalBookings)
	v.c.term.Printf("  confirmed:        %d", s.ConfirmedBookings)
	v.c.term.Printf("  waiting:          %d", s.WaitingBookings)
	v.c.term.Printf("  cancelled:        %d", s.CancelledBookings)
	v.c.term.Printf("Revenue:            %.2f", s.TotalRevenue)
}

func (v *adminView) showTrains() {
	if len(v.trains) == 0 {
		v.c.term.Notice("No trains available")
		return
	}
	w := tabwriter.NewWriter(v.c.term.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTRAIN\tNAME\tFROM\tTO\tSEATS\tFARE")
	for _, t := range v.trains {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d/%d\t%.2f\n",
			t.ID, t.TrainNumber, t.TrainName, t.Source, t.Destination,
			t.AvailableSeats, t.TotalSeats, t.Fare)
	}
	w.Flush()
}

func (v *adminView) showBookings() {
	if len(v.bookings) == 0 {
		v.c.term.Notice("No bookings yet")
		return
	}
	w := tabwriter.NewWriter(v.c.term.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PNR\tUSER\tTRAIN\tPASSENGER\tSTATUS")
	for _, b := range v.bookings {
		fmt.Fprintf(w, "%s\t%s\t%s (%s)\t%s\t%s\n",
			b.PNR, b.Username, b.TrainName, b.TrainNumber, b.PassengerName, b.BookingStatus)
	}
	w.Flush()
}

// addTrain collects and pre-validates the train record. Non-numeric seat
// and fare input never reaches the network.
func (v *adminView) addTrain(ctx context.Context) {
	req := &dto.TrainCreateRequest{
		TrainNumber:   v.c.term.Prompt("Train number"),
		TrainName:     v.c.term.Prompt("Train name"),
		Source:        v.c.term.Prompt("Source"),
		Destination:   v.c.term.Prompt("Destination"),
		DepartureTime: v.c.term.Prompt("Departure time (HH:MM)"),
		ArrivalTime:   v.c.term.Prompt("Arrival time (HH:MM)"),
	}

	seats, err := strconv.Atoi(v.c.term.Prompt("Total seats"))
	if err != nil {
		v.c.term.Failure("Total seats must be a number")
		return
	}
	req.TotalSeats = seats

	fare, err := strconv.ParseFloat(v.c.term.Prompt("Fare"), 64)
	if err != nil {
		v.c.term.Failure("Fare must be a number")
		return
	}
	req.Fare = fare

	if ok, msg := req.Validate(); !ok {
		v.c.term.Failure("%s", msg)
		return
	}

	if _, err := v.c.client.CreateTrain(ctx, req); err != nil {
		if v.c.guard.HandleAPIError(err) {
			v.c.term.Failure("Session expired, please login again")
			return
		}
		v.c.term.Failure("%s", api.Detail(err, "Failed to add train"))
		return
	}

	v.c.term.Success("Train added successfully")
	v.reload(ctx)
}

// deleteTrain removes a train after explicit confirmation.
func (v *adminView) deleteTrain(ctx context.Context) {
	v.showTrains()
	id := v.c.term.Prompt("Train ID to delete (blank to go back)")
	if id == "" {
		return
	}
	if !v.c.term.Confirm("Are you sure you want to delete this train?") {
		return
	}

	if err := v.c.client.DeleteTrain(ctx, id); err != nil {
		if v.c.guard.HandleAPIError(err) {
			v.c.term.Failure("Session expired, please login again")
			return
		}
		v.c.term.Failure("Failed to delete train")
		return
	}

	v.c.term.Success("Train deleted successfully")
	v.reload(ctx)
}
