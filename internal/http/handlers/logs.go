package handlers

import (
	"net/http"

	"console/internal/domain/models"
	"console/internal/listing"
	"console/internal/utils"

	"github.com/gin-gonic/gin"
)

type logsData struct {
	Page   listing.Page[models.LogEntry]
	Query  listing.Query
	Levels []models.Option
}

type logViewData struct {
	Log models.LogEntry
}

// Logs lists system log entries. Date filters arrive as YYYY-MM-DD from the
// form and go to the backend as MM/DD/YYYY.
func (h *Handler) Logs(c *gin.Context) {
	q := listing.Parse(c.Request.URL.Query(), h.Paging.DefaultSize, h.Paging.MaxSize,
		"fromDate", "toDate", "logLevelId", "message")

	var (
		res models.LogPage
		err error
	)
	if q.Filtered() {
		res, err = h.API.SearchLogs(h.ctx(c), token(c), models.LogSearch{
			FromDate:   utils.USDate(q.Get("fromDate")),
			ToDate:     utils.USDate(q.Get("toDate")),
			LogLevelID: q.Get("logLevelId"),
			Message:    q.Get("message"),
			PageIndex:  q.PageIndex,
			PageSize:   q.PageSize,
		})
	} else {
		res, err = h.API.ListLogs(h.ctx(c), token(c), q.PageIndex, q.PageSize)
	}
	if err != nil && h.loadFailed(c, err) {
		return
	}

	h.render(c, http.StatusOK, "logs.html", "Logs", "/logs", logsData{
		Page:   listing.NewPage("/logs", q, res.Logs, res.PageInfo),
		Query:  q,
		Levels: models.LogLevels,
	})
}

func (h *Handler) ClearLogs(c *gin.Context) {
	msg, err := h.API.ClearLogs(h.ctx(c), token(c))
	if err != nil {
		h.fail(c, err, "/logs")
		return
	}
	h.done(c, successMessage(msg, "Logs cleared"), "/logs")
}

func (h *Handler) ViewLog(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	entry, err := h.API.Log(h.ctx(c), token(c), id)
	if err != nil && h.loadFailed(c, err) {
		return
	}
	h.render(c, http.StatusOK, "log_view.html", "Log entry", "/logs", logViewData{Log: entry})
}
