// Package views holds the console's embedded templates and the layout chrome.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/session"
	"console/internal/utils"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Page is what every template receives.
type Page struct {
	Title    string
	Nav      string
	Operator session.Session
	Flash    *session.Flash
	Sidebar  []NavGroup
	Data     any
}

// Load parses every template. now is used by date-relative helpers.
func Load(now func() time.Time) (*template.Template, error) {
	if now == nil {
		now = time.Now
	}
	return template.New("console").Funcs(Funcs(now)).ParseFS(templateFiles, "templates/*.html")
}

// Static is the stylesheet tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func Funcs(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		"date":     utils.FormatDate,
		"datetime": utils.FormatDateTime,
		"money":    utils.FormatAmount,
		"amount": func(t domain.Text, currency string) string {
			v, err := utils.ParseAmount(t.String())
			if err != nil {
				return t.String()
			}
			return utils.FormatAmount(v, currency)
		},
		"statusLabel":     func(s domain.Status) string { return s.Label() },
		"logLevel":        models.LogLevelName,
		"logLevelClass":   LogLevelClass,
		"tripStatusClass": TripStatusClass,
		"cabin":           models.CabinClassName,
		"expired":         func(s string) bool { return utils.Expired(s, now()) },
		"fallback":        utils.Fallback,
		"add":             func(a, b int) int { return a + b },
		"sub":             func(a, b int) int { return a - b },
	}
}

// TripStatusClass picks the badge colour for a trip status.
func TripStatusClass(status string) string {
	switch status {
	case models.TripIssued:
		return "badge badge-green"
	case models.TripPendingApproval, models.TripPendingIssuance:
		return "badge badge-amber"
	case models.TripOnHold:
		return "badge badge-blue"
	case models.TripRejected, models.TripCancelled:
		return "badge badge-red"
	case models.TripRefunded:
		return "badge badge-purple"
	default:
		return "badge badge-gray"
	}
}

func LogLevelClass(level int) string {
	return "badge level-" + strings.ToLower(models.LogLevelName(level))
}
