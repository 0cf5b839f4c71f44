package handlers

import (
	"net/http"
	"strings"

	"console/internal/domain/models"
	"console/internal/http/middleware"
	"console/internal/session"
	"console/internal/tripcater"
	"console/internal/utils"

	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type loginData struct {
	Email string
	Error string
}

func (h *Handler) LoginPage(c *gin.Context) {
	if holder := middleware.GetHolder(c); holder != nil {
		if _, ok := holder.Current(); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	h.render(c, http.StatusOK, "login.html", "Sign in", "", loginData{})
}

// Login exchanges the operator's credentials for a backend token and starts
// a session.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := bind(c, &form); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", "Sign in", "",
			loginData{Email: form.Email, Error: errorMessage(err)})
		return
	}
	email := strings.TrimSpace(form.Email)

	res, msg, err := h.API.Login(h.ctx(c), email, form.Password)
	if err != nil {
		// landing on the login page is where a 401 would send us anyway
		if nav := tripcater.Navigate(err); nav.Redirects() && nav.Target != tripcater.LoginPath {
			h.navigate(c, err)
			return
		}
		utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "rejected")
		h.render(c, http.StatusUnauthorized, "login.html", "Sign in", "",
			loginData{Email: email, Error: utils.Fallback(tripcater.MessageOf(err), "Login failed")})
		return
	}
	if res.AccessToken == "" {
		h.render(c, http.StatusUnauthorized, "login.html", "Sign in", "",
			loginData{Email: email, Error: utils.Fallback(msg, "Login failed")})
		return
	}

	holder := middleware.GetHolder(c)
	s := session.Session{
		AccessToken: res.AccessToken,
		FullName:    utils.Fallback(res.FullName, "User"),
		Email:       email,
	}
	if err := holder.Login(c.Writer, c.Request, s); err != nil {
		utils.LogFailure(middleware.GetRequestID(c), "auth", "save_session", err)
		h.render(c, http.StatusInternalServerError, "login.html", "Sign in", "",
			loginData{Email: email, Error: genericFailure})
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "operator signed in")
	session.SetFlash(c.Writer, session.FlashSuccess, "Welcome back, "+s.FullName)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	if holder := middleware.GetHolder(c); holder != nil {
		if err := holder.Logout(c.Writer, c.Request); err != nil {
			utils.LogFailure(middleware.GetRequestID(c), "auth", "logout", err)
		}
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Register(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", "Create an account", "", nil)
}

type dashboardData struct {
	Stats models.Dashboard
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.API.Dashboard(h.ctx(c), token(c))
	if err != nil && h.loadFailed(c, err) {
		return
	}
	h.render(c, http.StatusOK, "dashboard.html", "Dashboard", "/dashboard", dashboardData{Stats: stats})
}
