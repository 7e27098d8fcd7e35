package console

import (
	"context"
	"sync"

	"github.com/divyam007142/Railway-reservation/internal/api"
	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/service"
)

// passengerView holds the passenger dashboard state: the displayed train
// snapshot, the identity's booking ledger, and the booking flow.
type passengerView struct {
	c    *Console
	flow *service.Orchestrator

	trains    []domain.Train
	bookings  []domain.Booking
	pnrResult *domain.Booking
}

func (c *Console) passengerDashboard(ctx context.Context) {
	sess, err := c.guard.Require(domain.RolePassenger)
	if err != nil {
		// Wrong or missing role: back to the entry screen. Teardown is
		// reserved for 401s and explicit logout.
		return
	}

	v := &passengerView{c: c}
	v.flow = service.NewOrchestrator(c.client, c.term, v)
	defer v.flow.Reset()

	if !v.load(ctx) {
		return
	}

	c.term.Printf("")
	c.term.Printf("Welcome, %s", sess.Identity.FullName)

	for {
		// Session may have been torn down by a 401 mid-loop, and a closed
		// stdin must not spin the menu forever.
		if c.store.Current() == nil || c.term.EOF() {
			return
		}

		c.term.Printf("")
		c.term.Printf("--- Passenger Dashboard ---")
		c.term.Printf("  1) Show trains")
		c.term.Printf("  2) Search trains")
		c.term.Printf("  3) Book a ticket")
		c.term.Printf("  4) My bookings")
		c.term.Printf("  5) Cancel a booking")
		c.term.Printf("  6) PNR status")
		c.term.Printf("  l) Logout")

		switch c.term.Prompt("Select") {
		case "1":
			v.showCatalog(ctx)
		case "2":
			v.searchCatalog(ctx)
		case "3":
			v.bookTicket(ctx)
		case "4":
			v.showLedger()
		case "5":
			v.cancelBooking(ctx)
		case "6":
			v.pnrResult = c.lookupPNR(ctx)
		case "l", "L":
			c.guard.Logout()
			c.term.Notice("Logged out successfully")
			return
		}
	}
}

// load issues the two initial fetches concurrently; the dashboard is not
// ready until both have resolved. Returns false when the session was
// cleared by a 401.
func (v *passengerView) load(ctx context.Context) bool {
	var wg sync.WaitGroup
	var trains []domain.Train
	var bookings []domain.Booking
	var trainsErr, bookingsErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		trains, trainsErr = v.c.client.ListTrains(ctx)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = v.c.client.MyBookings(ctx)
	}()
	wg.Wait()

	if v.c.guard.HandleAPIError(trainsErr) || v.c.guard.HandleAPIError(bookingsErr) {
		v.c.term.Failure("Session expired, please login again")
		return false
	}
	if trainsErr != nil {
		v.c.term.Failure("Failed to load trains")
	}
	if bookingsErr != nil {
		v.c.term.Failure("Failed to load bookings")
	}

	v.trains = trains
	v.bookings = bookings
	return true
}

// RefreshAfterMutation implements service.Refresher. Both the catalog and
// the ledger are replaced wholesale from server state; a response landing
// after logout is dropped rather than written into torn-down view state.
func (v *passengerView) RefreshAfterMutation(ctx context.Context) {
	trains, trainsErr := v.c.client.ListTrains(ctx)
	bookings, bookingsErr := v.c.client.MyBookings(ctx)

	if v.c.store.Current() == nil {
		return
	}
	if v.c.guard.HandleAPIError(bookingsErr) {
		return
	}
	if trainsErr == nil {
		v.trains = trains
	}
	if bookingsErr == nil {
		v.bookings = bookings
	}
}

// bookTicket runs one attempt through the booking flow: pick a train, pass
// the seat pre-check (with waiting-list consent when the snapshot shows
// none), fill the passenger form, submit, and report the settled outcome.
func (v *passengerView) bookTicket(ctx context.Context) {
	train, ok := v.pickTrain()
	if !ok {
		return
	}

	open, err := v.flow.Select(*train)
	if err != nil {
		v.c.term.Failure("%v", err)
		return
	}
	if !open {
		// Declined the waiting list; nothing changed.
		return
	}

	form, ok := v.promptPassengerForm()
	if !ok {
		v.flow.Reset()
		return
	}

	outcome, err := v.flow.Submit(ctx, form)
	if err != nil {
		if v.c.guard.HandleAPIError(err) {
			v.c.term.Failure("Session expired, please login again")
			return
		}
		v.c.term.Failure("%s", api.Detail(err, "Booking failed"))
		return
	}

	if outcome.Confirmed() {
		v.c.term.Success("Ticket booked! PNR: %s", outcome.PNR)
	} else {
		v.c.term.Notice("Added to waiting list. Position: %d", outcome.Position)
	}
}

// promptPassengerForm collects the passenger record. Non-numeric age and
// unknown gender values are rejected here, before any request is built.
func (v *passengerView) promptPassengerForm() (domain.PassengerForm, bool) {
	var form domain.PassengerForm

	form.Name = v.c.term.Prompt("Passenger name")

	age, err := domain.ParseAge(v.c.term.Prompt("Age"))
	if err != nil {
		v.c.term.Failure("Age must be a number")
		return form, false
	}
	form.Age = age

	form.Gender = v.c.term.PromptDefault("Gender (M/F/Other)", domain.GenderMale)
	form.Phone = v.c.term.Prompt("Phone")

	if err := form.Validate(); err != nil {
		v.c.term.Failure("%v", err)
		return form, false
	}
	return form, true
}
