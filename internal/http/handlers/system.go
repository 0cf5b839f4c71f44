package handlers

import (
	"net/http"

	"console/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type statusData struct {
	Message string
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "tripcater console running"})
}

// HealthDB pings the session database when the mysql store is in use.
func (h *Handler) HealthDB(c *gin.Context) {
	if h.DBCheck == nil {
		c.JSON(http.StatusOK, gin.H{"status": "skipped", "message": "sessions are stored in cookies"})
		return
	}
	if err := h.DBCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "session database reachable"})
}

// Root sends signed-in operators to the dashboard and everyone else to login.
func (h *Handler) Root(c *gin.Context) {
	if holder := middleware.GetHolder(c); holder != nil {
		if _, ok := holder.Current(); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Forbidden(c *gin.Context) {
	h.render(c, http.StatusForbidden, "status.html", "Access denied", "",
		statusData{Message: "You do not have permission to view this page."})
}

func (h *Handler) ErrorPage(c *gin.Context) {
	h.render(c, http.StatusOK, "status.html", "Something went wrong", "",
		statusData{Message: "The Tripcater service could not complete the request. Please try again later."})
}

func (h *Handler) NoRoute(c *gin.Context) {
	h.notFound(c)
}
