package tripcater

import (
	"context"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
)

func (c *Client) SearchTrips(ctx context.Context, token string, in models.TripSearch) (models.TripPage, error) {
	var out models.TripPage
	_, err := c.do(ctx, http.MethodPost, "/trips/search", nil, token, in, &out)
	return out, err
}

func (c *Client) Trip(ctx context.Context, token string, id domain.ID) (models.Trip, error) {
	var out models.Trip
	_, err := c.do(ctx, http.MethodGet, "/trip/"+id.String(), nil, token, nil, &out)
	return out, lookupError(err, "Trip")
}

func (c *Client) ChangeTripStatus(ctx context.Context, token string, id domain.ID, status string) (string, error) {
	return c.do(ctx, http.MethodPost, "/trip/"+id.String()+"/status", nil, token,
		models.TripStatusChange{Status: status}, nil)
}
