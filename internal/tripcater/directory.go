package tripcater

import (
	"context"
	"net/http"

	"console/internal/domain/models"
)

func (c *Client) Airlines(ctx context.Context, token string) ([]models.Airline, error) {
	var out []models.Airline
	_, err := c.do(ctx, http.MethodGet, "/directory/airlines", nil, token, nil, &out)
	return out, err
}

func (c *Client) Countries(ctx context.Context, token string) ([]models.Country, error) {
	var out []models.Country
	_, err := c.do(ctx, http.MethodGet, "/directory/countries", nil, token, nil, &out)
	return out, err
}

func (c *Client) Roles(ctx context.Context, token string) ([]models.Option, error) {
	var out []models.Option
	_, err := c.do(ctx, http.MethodGet, "/security/roles", nil, token, nil, &out)
	return out, err
}
