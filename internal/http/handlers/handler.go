package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	intconfig "console/internal/config"
	"console/internal/domain"
	"console/internal/http/middleware"
	"console/internal/session"
	"console/internal/tripcater"
	"console/internal/utils"
	"console/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const genericFailure = "Something went wrong. Please try again."

// Handler serves the console pages. It holds no per-request state.
type Handler struct {
	API    *tripcater.Client
	Paging intconfig.PagingConfig
	// DBCheck pings the session database; nil when sessions live in cookies.
	DBCheck func(context.Context) error
	Now     func() time.Time
}

func New(api *tripcater.Client, paging intconfig.PagingConfig) *Handler {
	return &Handler{API: api, Paging: paging, Now: time.Now}
}

type tab struct {
	Key   string
	Label string
}

// pickTab returns the requested tab when it is known, else the first one.
func pickTab(c *gin.Context, tabs []tab) string {
	want := c.Query("tab")
	for _, t := range tabs {
		if t.Key == want {
			return want
		}
	}
	return tabs[0].Key
}

func (h *Handler) render(c *gin.Context, status int, name, title, nav string, data any) {
	page := views.Page{
		Title:   title,
		Nav:     nav,
		Flash:   middleware.GetFlash(c),
		Sidebar: views.Sidebar,
		Data:    data,
	}
	if holder := middleware.GetHolder(c); holder != nil {
		page.Operator, _ = holder.Current()
	}
	c.HTML(status, name, page)
}

func token(c *gin.Context) string {
	if holder := middleware.GetHolder(c); holder != nil {
		return holder.Token()
	}
	return ""
}

// navigate sends the operator to the page a backend failure maps to and
// reports whether it did. A 401 also signs the operator out.
func (h *Handler) navigate(c *gin.Context, err error) bool {
	nav := tripcater.Navigate(err)
	if !nav.Redirects() {
		return false
	}
	utils.LogFailure(middleware.GetRequestID(c), "console", c.Request.Method+" "+c.FullPath(), err)
	if nav.ClearSession {
		if holder := middleware.GetHolder(c); holder != nil {
			if lerr := holder.Logout(c.Writer, c.Request); lerr != nil {
				utils.LogFailure(middleware.GetRequestID(c), "session", "logout", lerr)
			}
		}
	}
	c.Redirect(http.StatusFound, nav.Target)
	c.Abort()
	return true
}

// loadFailed handles a failed read for a page render: it navigates away when
// the failure calls for it, otherwise it queues an error toast and the page
// renders without data. It reports whether the handler must stop.
func (h *Handler) loadFailed(c *gin.Context, err error) bool {
	if h.navigate(c, err) {
		return true
	}
	utils.LogFailure(middleware.GetRequestID(c), "console", "load "+c.FullPath(), err)
	middleware.SetFlashNow(c, session.FlashError, errorMessage(err))
	return false
}

// fail handles a failed mutation: navigate, or toast and redirect to back.
func (h *Handler) fail(c *gin.Context, err error, back string) {
	if h.navigate(c, err) {
		return
	}
	if !domain.IsValidation(err) {
		utils.LogFailure(middleware.GetRequestID(c), "console", c.Request.Method+" "+c.FullPath(), err)
	}
	session.SetFlash(c.Writer, session.FlashError, errorMessage(err))
	c.Redirect(http.StatusFound, back)
}

// done finishes a successful mutation with a toast and a redirect.
func (h *Handler) done(c *gin.Context, message, back string) {
	utils.LogEvent(middleware.GetRequestID(c), "console", c.Request.Method+" "+c.FullPath(), message)
	session.SetFlash(c.Writer, session.FlashSuccess, message)
	c.Redirect(http.StatusFound, back)
}

func errorMessage(err error) string {
	var notFound domain.NotFoundError
	switch {
	case domain.IsValidation(err):
		msg, _ := domain.ValidationMessage(err)
		return msg
	case errors.As(err, &notFound):
		return notFound.Error()
	case domain.IsInternal(err):
		return genericFailure
	}
	if msg := tripcater.MessageOf(err); msg != "" {
		return msg
	}
	return genericFailure
}

// bind decodes a posted form. Binding and validation failures come back as
// a domain.ValidationError carrying the operator-facing message.
func bind(c *gin.Context, form any) error {
	if err := c.ShouldBind(form); err != nil {
		return domain.ValidationError{Msg: formMessage(err), Err: err}
	}
	return nil
}

func formMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid form submission"
	}
	fe := verrs[0]
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Enter a valid email address"
	case "numeric", "number":
		return label + " must be a number"
	case "eqfield":
		return "Passwords do not match"
	case "max":
		return label + " is too long"
	default:
		return label + " is invalid"
	}
}

// fieldLabel turns "CreditLimit" into "Credit limit".
func fieldLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// pathID parses an id route parameter; a bad id is a 404.
func (h *Handler) pathID(c *gin.Context, name string) (domain.ID, bool) {
	id, err := domain.ParseID(c.Param(name))
	if err != nil {
		h.notFound(c)
		return 0, false
	}
	return id, true
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "status.html", "Page not found", "",
		statusData{Message: "The page you are looking for does not exist."})
	c.Abort()
}

func (h *Handler) ctx(c *gin.Context) context.Context { return c.Request.Context() }

func amount(raw string) (float64, error) {
	v, err := utils.ParseAmount(raw)
	if err != nil {
		return 0, domain.ValidationError{Msg: "Enter a valid amount", Err: err}
	}
	return v, nil
}

func optionalAmount(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return amount(raw)
}

func optionalID(raw string) (domain.ID, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return domain.ParseID(raw)
}

func checkbox(v string) domain.Status {
	if v != "" {
		return domain.StatusActive
	}
	return domain.StatusInactive
}
