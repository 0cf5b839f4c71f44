package tripcater

import (
	"context"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
)

func (c *Client) SearchTravelers(ctx context.Context, token string, in models.TravelerSearch) (models.TravelerPage, error) {
	var out models.TravelerPage
	_, err := c.do(ctx, http.MethodPost, "/travelers/search", nil, token, in, &out)
	return out, err
}

func (c *Client) Traveler(ctx context.Context, token string, id domain.ID) (models.Traveler, error) {
	var out models.Traveler
	_, err := c.do(ctx, http.MethodGet, "/traveler/"+id.String(), nil, token, nil, &out)
	return out, lookupError(err, "Traveler")
}

func (c *Client) UpdateTraveler(ctx context.Context, token string, id domain.ID, in models.TravelerUpdate) (string, error) {
	return c.do(ctx, http.MethodPut, "/traveler/"+id.String(), nil, token, in, nil)
}

func (c *Client) UpdateTravelerDocument(ctx context.Context, token string, passportID domain.ID, in models.DocumentUpdate) (string, error) {
	return c.do(ctx, http.MethodPut, "/traveler/document-update/"+passportID.String(), nil, token, in, nil)
}

func (c *Client) ChangeTravelerPassword(ctx context.Context, token string, id domain.ID, newPassword string) (string, error) {
	return c.do(ctx, http.MethodPost, "/traveler/change-password/"+id.String(), nil, token,
		models.PasswordChange{NewPassword: newPassword}, nil)
}
