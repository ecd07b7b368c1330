package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"intent-router/config"
	_ "intent-router/docs" // Swagger docs
	"intent-router/internal/agenda"
	"intent-router/internal/httpserver"
	"intent-router/internal/middleware"
	routeHTTP "intent-router/internal/route/delivery/http"
	routeUC "intent-router/internal/route/usecase"
	"intent-router/internal/rail"
	"intent-router/internal/router"
	"intent-router/internal/turnctx"
	"intent-router/pkg/datemath"
	"intent-router/pkg/llmprovider"
	"intent-router/pkg/log"
)

// @title       Intent Router API
// @description Routes Dutch and English chat messages to typed intents and action plans.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting intent router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date resolution
	dateMathParser, err := datemath.NewParser(cfg.Router.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Router.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Model providers (resolved lazily on the first slow-path turn)
	var models router.ModelResolver
	if cfg.Router.ModelEnabled && len(cfg.LLM.Providers) > 0 {
		models = llmprovider.NewResolver(&cfg.LLM, logger)
		logger.Infof(ctx, "Model path enabled with %d configured provider(s)", len(cfg.LLM.Providers))
	} else {
		logger.Warn(ctx, "Model path disabled: unmatched messages degrade to a clarification")
	}

	// 5. Router
	domains := []router.Domain{
		rail.New(dateMathParser),
		agenda.New(dateMathParser),
	}
	r := router.New(logger, dateMathParser, router.Config{
		Enabled:       cfg.Router.Enabled,
		ModelEnabled:  cfg.Router.ModelEnabled,
		MinConfidence: &cfg.Router.MinConfidence,
		MaxInputChars: cfg.Router.MaxInputChars,
		ModelTimeout:  cfg.Router.ModelTimeout,
	}, models, domains)

	// 6. Turn context store + route delivery
	turns := turnctx.New(turnctx.Config{
		TTL:             cfg.TurnContext.TTL,
		MaxChats:        cfg.TurnContext.MaxChats,
		RateLimitPerMin: cfg.TurnContext.RateLimitPerMin,
	})
	routeHandler := routeHTTP.New(logger, routeUC.New(logger, r, turns))

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   middleware.New(logger, uuid.NewString),
		RouteHandler: routeHandler,
		Domains:      r.Domains(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
