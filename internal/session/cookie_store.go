package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const cookieIssuer = "tripcater-console"

// CookieStore keeps the whole session in one HS256-signed cookie.
type CookieStore struct {
	secret []byte
	opts   Options
	now    func() time.Time
}

func NewCookieStore(secret string, opts Options) *CookieStore {
	return &CookieStore{secret: []byte(secret), opts: opts, now: time.Now}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	AccessToken string `json:"tok"`
	FullName    string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
}

func (s *CookieStore) Load(r *http.Request) (*Session, error) {
	c, err := r.Cookie(s.opts.CookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}

	token, err := jwt.ParseWithClaims(c.Value, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(cookieIssuer), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	return &Session{AccessToken: claims.AccessToken, FullName: claims.FullName, Email: claims.Email}, nil
}

func (s *CookieStore) Save(w http.ResponseWriter, _ *http.Request, sess Session) error {
	now := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cookieIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TTL)),
		},
		AccessToken: sess.AccessToken,
		FullName:    sess.FullName,
		Email:       sess.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("session: sign cookie: %w", err)
	}
	s.opts.set(w, signed)
	return nil
}

func (s *CookieStore) Clear(w http.ResponseWriter, _ *http.Request) error {
	s.opts.expire(w)
	return nil
}
