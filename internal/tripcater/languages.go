package tripcater

import (
	"context"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
)

func (c *Client) Languages(ctx context.Context, token string) ([]models.Language, error) {
	var out []models.Language
	_, err := c.do(ctx, http.MethodGet, "/language/list", nil, token, nil, &out)
	return out, err
}

func (c *Client) Language(ctx context.Context, token string, id domain.ID) (models.Language, error) {
	var out models.Language
	_, err := c.do(ctx, http.MethodGet, "/language/"+id.String(), nil, token, nil, &out)
	return out, lookupError(err, "Language")
}

func (c *Client) SearchLocaleResources(ctx context.Context, token string, languageID domain.ID, in models.LocaleResourceSearch) (models.LocaleResourcePage, error) {
	var out models.LocaleResourcePage
	_, err := c.do(ctx, http.MethodPost, "/language/resources/search/"+languageID.String(), nil, token, in, &out)
	return out, err
}

// The resource mutations return their confirmation text as data.

func (c *Client) CreateLocaleResource(ctx context.Context, token string, languageID domain.ID, in models.LocaleResourceInput) (string, error) {
	return c.resourceMessage(ctx, http.MethodPost, "/resources/new/"+languageID.String(), token, in)
}

func (c *Client) UpdateLocaleResource(ctx context.Context, token string, resourceID domain.ID, in models.LocaleResourceInput) (string, error) {
	return c.resourceMessage(ctx, http.MethodPut, "/language/resources/"+resourceID.String(), token, in)
}

func (c *Client) DeleteLocaleResource(ctx context.Context, token string, resourceID domain.ID) (string, error) {
	return c.resourceMessage(ctx, http.MethodDelete, "/language/resources/"+resourceID.String(), token, nil)
}

func (c *Client) resourceMessage(ctx context.Context, method, path, token string, body any) (string, error) {
	var data domain.Text
	msg, err := c.do(ctx, method, path, nil, token, body, &data)
	if err != nil {
		return "", err
	}
	if data != "" {
		return data.String(), nil
	}
	return msg, nil
}
