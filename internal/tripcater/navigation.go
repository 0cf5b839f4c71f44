package tripcater

import (
	"errors"
	"net/http"
)

// Navigation is where the console sends the operator after a failed backend
// call. The zero value means "stay here": the caller reports the error itself.
type Navigation struct {
	Target       string
	ClearSession bool
}

func (n Navigation) Redirects() bool { return n.Target != "" }

const (
	LoginPath     = "/login"
	ForbiddenPath = "/403"
	ErrorPath     = "/error"
)

// Navigate maps a backend failure to the page the operator should land on.
// 401 drops the session, 403 shows the access denied page, 405/500 and
// unreachable backends show the generic error page. Everything else is left
// to the caller.
func Navigate(err error) Navigation {
	if err == nil {
		return Navigation{}
	}
	if errors.Is(err, ErrUnavailable) {
		return Navigation{Target: ErrorPath}
	}
	switch StatusOf(err) {
	case http.StatusUnauthorized:
		return Navigation{Target: LoginPath, ClearSession: true}
	case http.StatusForbidden:
		return Navigation{Target: ForbiddenPath}
	case http.StatusMethodNotAllowed, http.StatusInternalServerError:
		return Navigation{Target: ErrorPath}
	default:
		return Navigation{}
	}
}
