package session

import (
	"errors"
	"net/http"
	"time"
)

// Session is what the console remembers about a signed-in operator.
type Session struct {
	AccessToken string
	FullName    string
	Email       string
}

// Valid reports whether the session can be used to call the backend.
func (s Session) Valid() bool { return s.AccessToken != "" }

// ErrInvalid is returned by Load for cookies that cannot be trusted.
var ErrInvalid = errors.New("session: invalid cookie")

// Store persists the session between requests. Load returns nil, nil when the
// request carries no session.
type Store interface {
	Load(r *http.Request) (*Session, error)
	Save(w http.ResponseWriter, r *http.Request, s Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

func (o Options) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     o.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (o Options) set(w http.ResponseWriter, value string) {
	http.SetCookie(w, o.cookie(value, int(o.TTL.Seconds())))
}

func (o Options) expire(w http.ResponseWriter) {
	http.SetCookie(w, o.cookie("", -1))
}
