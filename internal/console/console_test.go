package console

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divyam007142/Railway-reservation/internal/api"
	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/dto"
	"github.com/divyam007142/Railway-reservation/internal/service"
	"github.com/divyam007142/Railway-reservation/internal/session"
	"github.com/divyam007142/Railway-reservation/internal/stub"
)

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, term.Confirm("Proceed?"))
		})
	}
}

func TestTerminal_PromptReportsEOF(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("one\n"), &out)

	assert.Equal(t, "one", term.Prompt("First"))
	assert.False(t, term.EOF())

	assert.Equal(t, "", term.Prompt("Second"))
	assert.True(t, term.EOF())

	// Exhausted input stays exhausted; no further prompt is printed.
	before := out.Len()
	assert.Equal(t, "", term.Prompt("Third"))
	assert.Equal(t, before, out.Len())
}

func TestTerminal_PromptDefault(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("\nF\n"), &out)

	assert.Equal(t, "M", term.PromptDefault("Gender", "M"))
	assert.Equal(t, "F", term.PromptDefault("Gender", "M"))
}

func TestLookupPNR_NormalizesBeforeRequest(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(domain.Booking{PNR: "PNR123", BookingStatus: domain.BookingStatusConfirmed})
	}))
	defer srv.Close()

	c, _ := testConsole(t, srv.URL, "  pnr123  \n")
	result := c.lookupPNR(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, "/api/bookings/pnr/PNR123", gotPath)
}

func TestLookupPNR_FailureClearsResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Booking not found"})
	}))
	defer srv.Close()

	c, out := testConsole(t, srv.URL, "PNR999\n")
	result := c.lookupPNR(context.Background())

	assert.Nil(t, result, "a failed lookup must clear any previous result")
	assert.Contains(t, out.String(), "Booking not found")
}

func TestLookupPNR_EmptyInputRejectedWithoutRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c, out := testConsole(t, srv.URL, "   \n")
	result := c.lookupPNR(context.Background())

	assert.Nil(t, result)
	assert.Zero(t, requests, "empty input must never reach the network")
	assert.Contains(t, out.String(), "Please enter PNR number")
}

func TestRun_StopsWhenInputExhausted(t *testing.T) {
	c, out := testConsole(t, "http://127.0.0.1:0", "")

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept looping after stdin was exhausted")
	}

	// The entry screen must render at most once, not spin.
	assert.Equal(t, 1, strings.Count(out.String(), "=== Railway Reservation ==="))
}

func TestPassengerDashboard_StopsWhenInputExhausted(t *testing.T) {
	v, out, _ := stubEnv(t, 1, "")

	done := make(chan struct{})
	go func() {
		v.c.passengerDashboard(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("passenger dashboard kept looping after stdin was exhausted")
	}
	assert.Equal(t, 1, strings.Count(out.String(), "--- Passenger Dashboard ---"))
}

func TestPassengerDashboard_RoleMismatchKeepsSession(t *testing.T) {
	c, _ := testConsole(t, "http://127.0.0.1:0", "")
	require.NoError(t, c.store.Save("opaque-token", domain.Identity{
		ID: "u-1", Username: "admin", FullName: "Administrator", Role: domain.RoleAdmin,
	}))

	c.passengerDashboard(context.Background())

	assert.NotNil(t, c.store.Current(), "a role mismatch alone must not clear the session")
}

// testConsole builds a Console whose terminal reads the scripted input.
func testConsole(t *testing.T, baseURL, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := api.NewClient(baseURL, 5*time.Second, store)
	out := &bytes.Buffer{}
	return New(client, store, NewTerminal(strings.NewReader(input), out)), out
}

// stubEnv wires a passenger view against the in-process stub server.
func stubEnv(t *testing.T, seats int, input string) (*passengerView, *bytes.Buffer, *stub.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backing := stub.NewStore()
	backing.AddTrain(&dto.TrainCreateRequest{
		TrainNumber: "12301", TrainName: "Rajdhani Express",
		Source: "Delhi", Destination: "Mumbai", TotalSeats: seats, Fare: 1250,
	})
	require.NoError(t, backing.Register(&dto.RegisterRequest{
		Username: "asha", Password: "secret1", FullName: "Asha Verma",
	}))

	srv := httptest.NewServer(stub.NewServer(backing, "test-secret", time.Hour).Router())
	t.Cleanup(srv.Close)

	c, out := testConsole(t, srv.URL, input)

	identity, err := backing.Authenticate("asha", "secret1")
	require.NoError(t, err)
	token, err := stub.IssueToken("test-secret", *identity, time.Hour)
	require.NoError(t, err)
	require.NoError(t, c.store.Save(token, *identity))

	v := &passengerView{c: c}
	v.flow = service.NewOrchestrator(c.client, c.term, v)
	require.True(t, v.load(context.Background()))
	return v, out, backing
}

func TestBookTicket_ConfirmedEndToEnd(t *testing.T) {
	// pick train 1, then the passenger form; plenty of seats so no
	// waiting-list prompt appears.
	input := "1\nAsha\n29\nF\n9999999999\n"
	v, out, _ := stubEnv(t, 2, input)

	v.bookTicket(context.Background())

	assert.Contains(t, out.String(), "Ticket booked! PNR: PNR000001")
	assert.NotContains(t, out.String(), "waiting list")

	// The catalog snapshot was re-fetched and shows the taken seat.
	require.Len(t, v.trains, 1)
	assert.Equal(t, 1, v.trains[0].AvailableSeats)
	require.Len(t, v.bookings, 1)
	assert.Equal(t, domain.BookingStatusConfirmed, v.bookings[0].BookingStatus)
}

func TestBookTicket_WaitlistEndToEnd(t *testing.T) {
	// train 1, consent to the waiting list, then the passenger form.
	input := "1\ny\nRavi\n34\nM\n8888888888\n"
	v, out, backing := stubEnv(t, 1, input)

	// Someone else already holds the only seat.
	_, err := backing.CreateBooking("other", &dto.BookingCreateRequest{
		TrainID: v.trains[0].ID, PassengerName: "Other", PassengerAge: 40,
		PassengerGender: "M", PassengerPhone: "7777777777",
	})
	require.NoError(t, err)
	v.RefreshAfterMutation(context.Background())
	require.Equal(t, 0, v.trains[0].AvailableSeats)

	v.bookTicket(context.Background())

	assert.Contains(t, out.String(), "Added to waiting list. Position: 1")
	assert.NotContains(t, out.String(), "Ticket booked")

	require.Len(t, v.bookings, 1)
	assert.Equal(t, domain.BookingStatusWaiting, v.bookings[0].BookingStatus)
}

func TestBookTicket_DeclineWaitlistChangesNothing(t *testing.T) {
	input := "1\nn\n"
	v, out, backing := stubEnv(t, 1, input)

	_, err := backing.CreateBooking("other", &dto.BookingCreateRequest{
		TrainID: v.trains[0].ID, PassengerName: "Other", PassengerAge: 40,
		PassengerGender: "M", PassengerPhone: "7777777777",
	})
	require.NoError(t, err)
	v.RefreshAfterMutation(context.Background())

	v.bookTicket(context.Background())

	assert.NotContains(t, out.String(), "Added to waiting list")
	assert.Empty(t, v.bookings)
	assert.Equal(t, service.StateIdle, v.flow.State())
}

func TestBookTicket_NonNumericAgeNeverSubmitted(t *testing.T) {
	input := "1\nAsha\ntwenty-nine\n"
	v, out, backing := stubEnv(t, 2, input)

	v.bookTicket(context.Background())

	assert.Contains(t, out.String(), "Age must be a number")
	assert.Empty(t, backing.AllBookings(), "invalid form must not reach the server")
}
