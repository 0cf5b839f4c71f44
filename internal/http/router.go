package api

import (
	"context"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"time"

	intconfig "console/internal/config"
	h "console/internal/http/handlers"
	"console/internal/http/middleware"
	"console/internal/session"
	"console/internal/tripcater"
	"console/internal/views"

	"github.com/gin-gonic/gin"
)

// Deps is everything the router wires into handlers and middleware.
type Deps struct {
	Env     intconfig.Env
	API     *tripcater.Client
	Store   session.Store
	Logger  *slog.Logger
	DBCheck func(context.Context) error
	Now     func() time.Time
}

func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Now == nil {
		d.Now = time.Now
	}
	tmpl, err := views.Load(d.Now)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		gin.Recovery(),
		middleware.CORS(d.Env.CORS.Origins()),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		slog.Warn("failed to set trusted proxies", slog.String("error", err.Error()))
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", stdhttp.FS(views.Static()))

	handler := h.New(d.API, d.Env.Paging)
	handler.DBCheck = d.DBCheck
	handler.Now = d.Now

	r.GET("/health", handler.Health)
	r.GET("/health/db", handler.HealthDB)

	pages := r.Group("/", middleware.Hydrate(d.Store, d.Logger), middleware.Flash())
	{
		pages.GET("", handler.Root)
		pages.GET("login", handler.LoginPage)
		pages.POST("login", handler.Login)
		pages.POST("logout", handler.Logout)
		pages.GET("register", handler.Register)
		pages.GET("403", handler.Forbidden)
		pages.GET("error", handler.ErrorPage)
	}

	console := pages.Group("", middleware.RequireSession())
	{
		console.GET("dashboard", handler.Dashboard)

		// Corporates
		corporates := console.Group("corporates")
		corporates.GET("", handler.Corporates)
		corporates.POST("", handler.CreateCorporate)
		corporates.GET("/:id/edit", handler.EditCorporate)
		corporates.POST("/:id/edit", handler.UpdateCorporate)
		corporates.POST("/:id/price-settings", handler.CreatePriceSetting)
		corporates.POST("/:id/price-settings/:settingId/delete", handler.DeletePriceSetting)

		// Travelers
		travelers := console.Group("travelers")
		travelers.GET("", handler.Travelers)
		travelers.GET("/:id/edit", handler.EditTraveler)
		travelers.POST("/:id/edit", handler.UpdateTraveler)
		travelers.POST("/:id/documents", handler.UpdateTravelerDocument)
		travelers.POST("/:id/password", handler.ChangeTravelerPassword)

		// Trips
		trips := console.Group("trips")
		trips.GET("", handler.Trips)
		trips.GET("/:id/view", handler.ViewTrip)
		trips.POST("/:id/status", handler.ChangeTripStatus)
		trips.GET("/:id/itinerary.pdf", handler.TripItinerary)

		// Users
		users := console.Group("users")
		users.GET("", handler.Users)
		users.POST("", handler.CreateUser)
		users.GET("/:id/edit", handler.EditUser)
		users.POST("/:id/edit", handler.UpdateUser)
		users.POST("/:id/delete", handler.DeleteUser)
		users.POST("/:id/password", handler.ChangeUserPassword)

		// Languages
		languages := console.Group("languages")
		languages.GET("", handler.Languages)
		languages.GET("/:id/edit", handler.EditLanguage)
		languages.POST("/:id/resources", handler.CreateLocaleResource)
		languages.POST("/:id/resources/:resourceId", handler.UpdateLocaleResource)
		languages.POST("/:id/resources/:resourceId/delete", handler.DeleteLocaleResource)

		// Logs
		logs := console.Group("logs")
		logs.GET("", handler.Logs)
		logs.POST("/clear", handler.ClearLogs)
		logs.GET("/:id/view", handler.ViewLog)
	}

	r.NoRoute(middleware.Hydrate(d.Store, d.Logger), middleware.Flash(), middleware.RequireSession(), handler.NoRoute)

	return r, nil
}
