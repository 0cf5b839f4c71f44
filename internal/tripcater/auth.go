package tripcater

import (
	"context"
	"net/http"

	"console/internal/domain/models"
)

// Login exchanges credentials for an access token. It is the only call made
// without a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResult, string, error) {
	var out models.LoginResult
	msg, err := c.do(ctx, http.MethodPost, "/auth/login", nil, "",
		models.LoginRequest{Email: email, Password: password}, &out)
	return out, msg, err
}

func (c *Client) Dashboard(ctx context.Context, token string) (models.Dashboard, error) {
	var out models.Dashboard
	_, err := c.do(ctx, http.MethodGet, "/dashboard", nil, token, nil, &out)
	return out, err
}
