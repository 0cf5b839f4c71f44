package tripcater

import (
	"context"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
)

func (c *Client) ListLogs(ctx context.Context, token string, pageIndex, pageSize int) (models.LogPage, error) {
	var out models.LogPage
	_, err := c.do(ctx, http.MethodGet, "/logs/list", pageQuery(pageIndex, pageSize), token, nil, &out)
	return out, err
}

// SearchLogs sends only the filters that are set.
func (c *Client) SearchLogs(ctx context.Context, token string, in models.LogSearch) (models.LogPage, error) {
	q := pageQuery(in.PageIndex, in.PageSize)
	for key, v := range map[string]string{
		"fromDate":   in.FromDate,
		"toDate":     in.ToDate,
		"logLevelId": in.LogLevelID,
		"message":    in.Message,
	} {
		if v != "" {
			q.Set(key, v)
		}
	}
	var out models.LogPage
	_, err := c.do(ctx, http.MethodGet, "/logs/search", q, token, nil, &out)
	return out, err
}

func (c *Client) ClearLogs(ctx context.Context, token string) (string, error) {
	return c.do(ctx, http.MethodPost, "/logs/clear", nil, token, nil, nil)
}

func (c *Client) Log(ctx context.Context, token string, id domain.ID) (models.LogEntry, error) {
	var out models.LogEntry
	_, err := c.do(ctx, http.MethodGet, "/log/view/"+id.String(), nil, token, nil, &out)
	return out, lookupError(err, "Log entry")
}
