package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/resourcehub/portal/docs"
	"github.com/resourcehub/portal/internal/api/handler"
	"github.com/resourcehub/portal/internal/api/metrics"
	"github.com/resourcehub/portal/internal/api/middleware"
	"github.com/resourcehub/portal/internal/core/notify"
	"github.com/resourcehub/portal/internal/core/ports"
	"github.com/resourcehub/portal/internal/core/routing"
)

// Deps are the components the portal's HTTP surface is built from.
type Deps struct {
	Sessions ports.SessionService
	Notes    *notify.Manager
	Views    *routing.Table
	// Ready lists the dependencies checked by GET /health/ready.
	Ready map[string]handler.Pinger
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(metrics.HTTPMiddleware())
	e.Use(middleware.Session(d.Sessions))

	// --- Dependencies ---
	rec := metrics.Recorder{}
	viewHandler := handler.NewViewHandler(d.Notes)
	sessionHandler := handler.NewSessionHandler(d.Sessions, d.Notes, d.Log)
	notificationHandler := handler.NewNotificationHandler(d.Notes)
	guard := middleware.Guard(d.Views, rec, d.Log)

	// --- Health checks and metrics (never guarded) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Ready)

	e.GET("/health", healthHandler.Liveness)            // is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // are storage and the API up?
	e.GET("/metrics", metrics.Handler())

	// --- API docs ---
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session actions ---
	s := e.Group("/session")
	s.GET("", sessionHandler.Get)
	s.POST("/login", sessionHandler.Login, middleware.RequireAccess(routing.AccessRequiresGuest))
	s.POST("/register", sessionHandler.Register, middleware.RequireAccess(routing.AccessRequiresGuest))
	s.POST("/logout", sessionHandler.Logout)
	s.PUT("/profile", sessionHandler.UpdateProfile, middleware.RequireAccess(routing.AccessRequiresAuth))

	// --- Notifications ---
	e.GET("/notifications", notificationHandler.List)
	e.DELETE("/notifications/:id", notificationHandler.Dismiss)

	// --- Views ---
	for _, r := range d.Views.Routes() {
		if r.Path == "*" {
			continue
		}
		e.GET(r.Path, viewHandler.Show, guard)
	}
	e.GET("/*", viewHandler.Show, guard)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
