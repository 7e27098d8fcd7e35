package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/dto"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, TokenFunc(func() string { return token }))
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]domain.Booking{})
	}, "tok-123")

	_, err := client.MyBookings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoBearerOnPublicCalls(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]domain.Train{})
	}, "tok-123")

	_, err := client.ListTrains(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gotAuth, "catalog listing requires no auth")
}

func TestClient_SearchOmitsAbsentFields(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]domain.Train{})
	}, "")

	_, err := client.SearchTrains(context.Background(), "Delhi", "")

	require.NoError(t, err)
	assert.Equal(t, "source=Delhi", gotQuery, "absent destination must be omitted, not sent empty")
}

func TestClient_DecodesBookingOutcome(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)

		var req dto.BookingCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 29, req.PassengerAge)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.BookingOutcome{Status: "waiting", Position: 3})
	}, "tok")

	outcome, err := client.CreateBooking(context.Background(), &dto.BookingCreateRequest{
		TrainID:         "t-1",
		PassengerName:   "Asha",
		PassengerAge:    29,
		PassengerGender: "F",
		PassengerPhone:  "9999999999",
	})

	require.NoError(t, err)
	assert.Equal(t, "waiting", outcome.Status)
	assert.Equal(t, 3, outcome.Position)
}

func TestClient_ErrorCarriesServerDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Train not found"})
	}, "tok")

	_, err := client.CreateBooking(context.Background(), &dto.BookingCreateRequest{TrainID: "nope"})

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Train not found", apiErr.Detail)
	assert.Equal(t, "Train not found", Detail(err, "Booking failed"))
}

func TestClient_ErrorWithoutDetailUsesFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "")

	_, err := client.ListTrains(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Failed to load trains", Detail(err, "Failed to load trains"))
}

func TestClient_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid or expired token"})
	}, "stale")

	_, err := client.MyBookings(context.Background())

	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsUnauthorized(nil))
}

func TestClient_LookupPNRPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/pnr/PNR123", r.URL.Path)
		json.NewEncoder(w).Encode(domain.Booking{PNR: "PNR123", BookingStatus: domain.BookingStatusConfirmed})
	}, "")

	booking, err := client.LookupPNR(context.Background(), "PNR123")

	require.NoError(t, err)
	assert.Equal(t, "PNR123", booking.PNR)
}
