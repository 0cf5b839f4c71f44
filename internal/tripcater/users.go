package tripcater

import (
	"context"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
)

func (c *Client) ListUsers(ctx context.Context, token string, pageIndex, pageSize int) (models.UserPage, error) {
	var out models.UserPage
	_, err := c.do(ctx, http.MethodGet, "/users/list", pageQuery(pageIndex, pageSize), token, nil, &out)
	return out, err
}

func (c *Client) SearchUsers(ctx context.Context, token string, in models.UserSearch) (models.UserPage, error) {
	var out models.UserPage
	_, err := c.do(ctx, http.MethodPost, "/users/search", nil, token, in, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, token string, in models.NewUser) (string, error) {
	return c.do(ctx, http.MethodPost, "/user/new", nil, token, in, nil)
}

func (c *Client) User(ctx context.Context, token string, id domain.ID) (models.User, error) {
	var out models.User
	_, err := c.do(ctx, http.MethodGet, "/user/"+id.String(), nil, token, nil, &out)
	return out, lookupError(err, "User")
}

func (c *Client) UpdateUser(ctx context.Context, token string, id domain.ID, in models.UserUpdate) (string, error) {
	return c.do(ctx, http.MethodPut, "/user/edit/"+id.String(), nil, token, in, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token string, id domain.ID) (string, error) {
	return c.do(ctx, http.MethodDelete, "/user/delete/"+id.String(), nil, token, nil, nil)
}

func (c *Client) ChangeUserPassword(ctx context.Context, token string, id domain.ID, newPassword string) (string, error) {
	return c.do(ctx, http.MethodPost, "/user/change-password/"+id.String(), nil, token,
		models.PasswordChange{NewPassword: newPassword}, nil)
}
