package console

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/divyam007142/Railway-reservation/internal/domain"
)

// showCatalog re-fetches and renders the full train catalog.
func (v *passengerView) showCatalog(ctx context.Context) {
	trains, err := v.c.client.ListTrains(ctx)
	if err != nil {
		v.c.term.Failure("Failed to load trains")
		return
	}
	v.trains = trains
	v.renderTrains()
}

// searchCatalog filters trains by source and/or destination. Both fields
// are optional; an empty query falls back to the full catalog. The fetched
// set replaces the displayed one wholesale so seat counts are never a mix
// of two snapshots.
func (v *passengerView) searchCatalog(ctx context.Context) {
	source := v.c.term.Prompt("From (source, blank for any)")
	destination := v.c.term.Prompt("To (destination, blank for any)")

	if source == "" && destination == "" {
		v.showCatalog(ctx)
		return
	}

	trains, err := v.c.client.SearchTrains(ctx, source, destination)
	if err != nil {
		v.c.term.Failure("Search failed")
		return
	}
	v.trains = trains
	if len(trains) == 0 {
		v.c.term.Notice("No trains found for this route")
		return
	}
	v.renderTrains()
}

func (v *passengerView) renderTrains() {
	if len(v.trains) == 0 {
		v.c.term.Notice("No trains available")
		return
	}

	w := tabwriter.NewWriter(v.c.term.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTRAIN\tNAME\tFROM\tTO\tDEP\tARR\tSEATS\tFARE")
	for i, t := range v.trains {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d/%d\t%.2f\n",
			i+1, t.TrainNumber, t.TrainName, t.Source, t.Destination,
			t.DepartureTime, t.ArrivalTime, t.AvailableSeats, t.TotalSeats, t.Fare)
	}
	w.Flush()
}

// pickTrain renders the catalog and resolves the user's selection against
// the last fetched snapshot.
func (v *passengerView) pickTrain() (*domain.Train, bool) {
	v.renderTrains()
	if len(v.trains) == 0 {
		return nil, false
	}

	raw := v.c.term.Prompt("Train # to book (blank to go back)")
	if raw == "" {
		return nil, false
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 1 || idx > len(v.trains) {
		v.c.term.Failure("Invalid train selection")
		return nil, false
	}
	return &v.trains[idx-1], true
}
