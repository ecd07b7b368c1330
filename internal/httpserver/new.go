package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"intent-router/internal/middleware"
	routeHTTP "intent-router/internal/route/delivery/http"
	"intent-router/pkg/log"
)

var (
	errLoggerRequired = errors.New("logger is required")
	errModeRequired   = errors.New("mode is required")
	errPortRequired   = errors.New("port is required")
)

// HTTPServer serves the routing API and the system routes.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	environment string
	mw          middleware.Middleware
	startedAt   time.Time

	routeHandler routeHTTP.Handler
	domains      []string
}

// Config is the dependency bag passed to New. A nil RouteHandler leaves the
// /api/v1 group unmounted and the server not ready.
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	RouteHandler routeHTTP.Handler
	Domains      []string
}

func (cfg Config) validate(l log.Logger) error {
	switch {
	case l == nil:
		return errLoggerRequired
	case cfg.Mode == "":
		return errModeRequired
	case cfg.Port == 0:
		return errPortRequired
	}
	return nil
}

// New builds the gin engine and registers every route.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if err := cfg.validate(l); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:          gin.New(),
		l:            l,
		port:         cfg.Port,
		environment:  cfg.Environment,
		mw:           cfg.Middleware,
		startedAt:    time.Now(),
		routeHandler: cfg.RouteHandler,
		domains:      cfg.Domains,
	}
	srv.mapHandlers()

	return srv, nil
}
