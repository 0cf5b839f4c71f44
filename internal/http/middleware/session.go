package middleware

import (
	"log/slog"
	"net/http"

	"console/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	holderKey = "session_holder"
	flashKey  = "flash"
)

// Hydrate loads the operator's session once per request, before any handler
// runs. An unreadable session counts as signed out and its cookie is dropped.
func Hydrate(store session.Store, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		h := session.NewHolder(store)
		if err := h.Hydrate(c.Request); err != nil {
			logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "session dropped",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()),
			)
			_ = store.Clear(c.Writer, c.Request)
		}
		c.Set(holderKey, h)
		c.Next()
	}
}

// GetHolder returns the request's auth state, or nil outside Hydrate.
func GetHolder(c *gin.Context) *session.Holder {
	if v, ok := c.Get(holderKey); ok {
		if h, ok := v.(*session.Holder); ok {
			return h
		}
	}
	return nil
}

// RequireSession guards the console pages. Without a hydrated, valid session
// the request is redirected to the login page and the handler never runs.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := GetHolder(c)
		if h == nil || !h.Loaded() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if _, ok := h.Current(); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Flash moves a pending toast from its cookie into the request.
func Flash() gin.HandlerFunc {
	return func(c *gin.Context) {
		if f, ok := session.TakeFlash(c.Writer, c.Request); ok {
			c.Set(flashKey, &f)
		}
		c.Next()
	}
}

// SetFlashNow shows a toast on the page being rendered.
func SetFlashNow(c *gin.Context, kind, message string) {
	c.Set(flashKey, &session.Flash{Kind: kind, Message: message})
}

func GetFlash(c *gin.Context) *session.Flash {
	if v, ok := c.Get(flashKey); ok {
		if f, ok := v.(*session.Flash); ok {
			return f
		}
	}
	return nil
}
