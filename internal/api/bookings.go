package api

import (
	"context"
	"net/http"

	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/dto"
)

// CreateBooking submits a booking request. The response status decides the
// confirmed-vs-waiting branch; the caller's seat pre-check is advisory only.
func (c *Client) CreateBooking(ctx context.Context, req *dto.BookingCreateRequest) (*dto.BookingOutcome, error) {
	var out dto.BookingOutcome
	if err := c.do(ctx, http.MethodPost, "/api/bookings", nil, req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyBookings fetches the bookings owned by the session identity. The server
// filters by the bearer token; the client never filters locally.
func (c *Client) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/my-bookings", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// AllBookings fetches every booking. Admin only.
func (c *Client) AllBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/all", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelBooking cancels a booking by PNR.
func (c *Client) CancelBooking(ctx context.Context, pnr string) (*dto.CancelResponse, error) {
	var out dto.CancelResponse
	if err := c.do(ctx, http.MethodDelete, "/api/bookings/"+pnr, nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// LookupPNR resolves a reference code to its booking. No auth required; the
// caller normalizes the input first.
func (c *Client) LookupPNR(ctx context.Context, pnr string) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/pnr/"+pnr, nil, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// SummaryReport fetches the aggregate statistics report. Admin only.
func (c *Client) SummaryReport(ctx context.Context) (*dto.SummaryReport, error) {
	var out dto.SummaryReport
	if err := c.do(ctx, http.MethodGet, "/api/reports/summary", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
