package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/dto"
)

// ListTrains fetches every train. No auth required.
func (c *Client) ListTrains(ctx context.Context) ([]domain.Train, error) {
	var out []domain.Train
	if err := c.do(ctx, http.MethodGet, "/api/trains", nil, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchTrains fetches trains filtered by source and/or destination. Absent
// fields are omitted from the query; matching semantics are server-defined.
func (c *Client) SearchTrains(ctx context.Context, source, destination string) ([]domain.Train, error) {
	query := url.Values{}
	if source != "" {
		query.Set("source", source)
	}
	if destination != "" {
		query.Set("destination", destination)
	}

	var out []domain.Train
	if err := c.do(ctx, http.MethodGet, "/api/trains/search", query, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTrain adds a train record. Admin only.
func (c *Client) CreateTrain(ctx context.Context, req *dto.TrainCreateRequest) (*domain.Train, error) {
	var out domain.Train
	if err := c.do(ctx, http.MethodPost, "/api/trains", nil, req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTrain removes a train record. Admin only.
func (c *Client) DeleteTrain(ctx context.Context, trainID string) error {
	return c.do(ctx, http.MethodDelete, "/api/trains/"+trainID, nil, nil, nil, true)
}
