package tripcater

import (
	"context"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
)

func (c *Client) ListCorporates(ctx context.Context, token string, pageIndex, pageSize int) (models.CorporatePage, error) {
	var out models.CorporatePage
	_, err := c.do(ctx, http.MethodGet, "/corporate/list", pageQuery(pageIndex, pageSize), token, nil, &out)
	return out, err
}

func (c *Client) SearchCorporates(ctx context.Context, token string, in models.CorporateSearch) (models.CorporatePage, error) {
	var out models.CorporatePage
	_, err := c.do(ctx, http.MethodPost, "/corporate/search", nil, token, in, &out)
	return out, err
}

func (c *Client) CreateCorporate(ctx context.Context, token string, in models.NewCorporate) (string, error) {
	return c.do(ctx, http.MethodPost, "/corporate/new", nil, token, in, nil)
}

func (c *Client) Corporate(ctx context.Context, token string, id domain.ID) (models.CorporateDetails, error) {
	var out models.CorporateDetails
	_, err := c.do(ctx, http.MethodGet, "/corporate/"+id.String(), nil, token, nil, &out)
	return out, lookupError(err, "Corporate")
}

func (c *Client) UpdateCorporate(ctx context.Context, token string, id domain.ID, in models.CorporateUpdate) (string, error) {
	return c.do(ctx, http.MethodPut, "/corporate/edit/"+id.String(), nil, token, in, nil)
}

func (c *Client) PriceSettings(ctx context.Context, token string, corporateID domain.ID) ([]models.PriceMarkupSetting, error) {
	var out models.PriceSettings
	_, err := c.do(ctx, http.MethodGet, "/corporate/price-settings/"+corporateID.String(), nil, token, nil, &out)
	return out.PriceMarkupSettings, err
}

func (c *Client) CreatePriceSetting(ctx context.Context, token string, corporateID domain.ID, in models.NewPriceSetting) (string, error) {
	return c.do(ctx, http.MethodPost, "/corporate/price-settings/new/"+corporateID.String(), nil, token, in, nil)
}

func (c *Client) DeletePriceSetting(ctx context.Context, token string, settingID domain.ID) (string, error) {
	return c.do(ctx, http.MethodDelete, "/corporate/price-settings/delete/"+settingID.String(), nil, token, nil, nil)
}
