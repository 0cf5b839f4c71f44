package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"console/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSecret = strings.Repeat("m", 32)

func newStore() *session.CookieStore {
	return session.NewCookieStore(testSecret, session.Options{CookieName: "tc_test", TTL: time.Hour})
}

func guardedEngine(store session.Store, hit *int) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Hydrate(store, nil))
	r.GET("/dashboard", RequireSession(), func(c *gin.Context) {
		*hit++
		s, _ := GetHolder(c).Current()
		c.String(http.StatusOK, s.FullName+"|"+c.Request.URL.RawQuery)
	})
	return r
}

func sessionCookie(t *testing.T, store session.Store, s session.Session) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), s))
	return rec.Result().Cookies()[0]
}

func TestRequireSession_RedirectsWithoutSession(t *testing.T) {
	hit := 0
	r := guardedEngine(newStore(), &hit)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, hit)
}

func TestRequireSession_PassesRequestThrough(t *testing.T) {
	store := newStore()
	hit := 0
	r := guardedEngine(store, &hit)

	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=x", nil)
	req.AddCookie(sessionCookie(t, store, session.Session{AccessToken: "tok", FullName: "Ops"}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ops|tab=x", rec.Body.String())
	assert.Equal(t, 1, hit)
}

func TestRequireSession_TamperedCookieIsDropped(t *testing.T) {
	store := newStore()
	hit := 0
	r := guardedEngine(store, &hit)

	c := sessionCookie(t, store, session.Session{AccessToken: "tok"})
	c.Value += "x"
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(c)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, hit)

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "tc_test" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestRequireSession_FailsClosedWithoutHydration(t *testing.T) {
	r := gin.New()
	hit := 0
	r.GET("/dashboard", RequireSession(), func(c *gin.Context) { hit++ })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Zero(t, hit)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Body.String(), 36)
	assert.Equal(t, rec.Body.String(), rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestFlash(t *testing.T) {
	r := gin.New()
	r.Use(Flash())
	r.GET("/", func(c *gin.Context) {
		if f := GetFlash(c); f != nil {
			c.String(http.StatusOK, f.Kind+":"+f.Message)
			return
		}
		c.String(http.StatusOK, "none")
	})

	set := httptest.NewRecorder()
	session.SetFlash(set, session.FlashSuccess, "Saved")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range set.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "success:Saved", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "none", rec.Body.String())
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://admin.example.test"}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://admin.example.test")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "https://admin.example.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.test")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHydrate_LogsDroppedSessionToInjectedLogger(t *testing.T) {
	store := newStore()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(RequestID(), Hydrate(store, logger))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	c := sessionCookie(t, store, session.Session{AccessToken: "tok"})
	c.Value += "x"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "session dropped")
	assert.Contains(t, buf.String(), "request_id=")
}
