package app

import (
	"context"
	"fmt"
	"strings"

	"career-compass/internal/advisor"
	"career-compass/internal/analytics"
	"career-compass/internal/cache"
	"career-compass/internal/config"
	"career-compass/internal/dataset"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	"career-compass/internal/resume"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber  *fiber.App
	Logger *zap.Logger
}

// Bootstrap builds the whole application: logger, the one-time dataset
// load, the analyzer, collaborator clients and the HTTP surface. A dataset
// load failure is logged and the app serves with an empty snapshot; every
// query then answers with its no-data result instead of crashing the boot.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger, err := newLogger(cfg.App.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	records, err := dataset.Load(cfg.Dataset.Paths...)
	if err != nil {
		logger.Error("dataset load failed, serving with empty dataset", zap.Error(err))
		records = nil
	} else {
		logger.Info("dataset loaded", zap.Int("records", len(records)))
	}
	analyzer := analytics.New(records)

	var advisorClient *advisor.Client
	if cfg.Gemini.APIKey != "" {
		advisorClient, err = advisor.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
		if err != nil {
			logger.Warn("advisor disabled", zap.Error(err))
			advisorClient = nil
		}
	} else {
		logger.Info("no Gemini API key configured, advisor endpoints disabled")
	}

	results := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, logger)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessMw.Middleware())

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(analyzer.Len()),
		Market: handler.NewMarketHandler(analyzer, results, cfg.Redis.CacheTTL),
		Resume: handler.NewResumeHandler(resume.NewParser(nil), advisorClient, analyzer),
		Advice: handler.NewAdviceHandler(advisorClient),
	}
	registry.Register(f)

	cleanup := func() error {
		_ = logger.Sync()
		return results.Close()
	}

	return &App{Fiber: f, Logger: logger}, cleanup, nil
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
