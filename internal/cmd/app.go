package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/olprint/backoffice/internal/assistant"
	"github.com/olprint/backoffice/internal/catalog"
	"github.com/olprint/backoffice/internal/config"
	"github.com/olprint/backoffice/internal/fixtures"
	"github.com/olprint/backoffice/internal/llm"
	"github.com/olprint/backoffice/internal/logging"
	"github.com/olprint/backoffice/internal/metrics"
	"github.com/olprint/backoffice/internal/orders"
	"github.com/olprint/backoffice/internal/report"
	"github.com/olprint/backoffice/internal/types"
)

// application holds the seeded stores and services one invocation works on.
type application struct {
	cfg       *config.Config
	logger    *slog.Logger
	metrics   *metrics.Metrics
	catalog   *catalog.Store
	orders    *orders.Store
	assistant *assistant.Client
	reports   *report.Generator
}

func newApp(cfg *config.Config, logOut io.Writer) (*application, error) {
	logger, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	slog.SetDefault(logger)

	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return nil, err
	}
	return buildApp(cfg, logger, gen), nil
}

// newGenerator returns nil without error when no credential is configured, so
// the AI features degrade instead of blocking startup.
func newGenerator(cfg *config.Config, logger *slog.Logger) (types.Generator, error) {
	gen, err := llm.NewGenerator(&cfg.LLM)
	if errors.Is(err, llm.ErrMissingAPIKey) {
		logger.Warn("text generation disabled: API key not configured",
			"provider", cfg.LLM.Generator.Provider,
			"api_key_env", cfg.LLM.Generator.APIKeyEnv)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	return gen, nil
}

func buildApp(cfg *config.Config, logger *slog.Logger, gen types.Generator) *application {
	m := metrics.New()
	return &application{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		catalog: catalog.NewStore(fixtures.Categories(), fixtures.Products()),
		orders:  orders.NewStore(fixtures.Orders()),
		assistant: assistant.New(gen,
			assistant.WithBrand(cfg.Brand),
			assistant.WithLogger(logger),
			assistant.WithMetrics(m),
			assistant.WithRateLimit(cfg.LLM.RequestsPerMinute)),
		reports: report.NewGenerator(cfg.Brand,
			report.WithLogger(logger),
			report.WithMetrics(m)),
	}
}
