// Package assistant wraps a text generator with the two calls the back office
// makes: a product description for the product form and a one-line business
// insight for the dashboard banner.
//
// The two calls fail differently. The description is a user action, so every
// problem is returned to the caller, which keeps the form untouched. The
// insight is decorative, so problems turn into a readable placeholder and the
// call never fails.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/olprint/backoffice/internal/metrics"
	"github.com/olprint/backoffice/internal/models"
	"github.com/olprint/backoffice/internal/types"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	FallbackDescription  = "Não foi possível gerar a descrição."
	InsightNoCredential  = "Gemini API Key não configurada."
	InsightFailed        = "Não foi possível gerar insights."
	InsightEmpty         = "Sem insights disponíveis no momento."
	callDescription      = "description"
	callInsight          = "insight"
	defaultBrand         = "OLPrint"
	descriptionMaxTokens = 600
	insightMaxTokens     = 120
)

var (
	// ErrMissingCredential is returned by GenerateProductDescription when no generator is configured.
	ErrMissingCredential = errors.New("API key is missing: text generation is not configured")
	// ErrRequestPending is returned by Begin while a request for the same trigger is in flight.
	ErrRequestPending = errors.New("a generation request is already pending")
)

type Option func(*Client)

func WithBrand(brand string) Option {
	return func(c *Client) {
		if brand != "" {
			c.brand = brand
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithRateLimit spaces generation requests to at most perMinute per minute.
// Zero disables the limit.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
		}
	}
}

type Client struct {
	gen     types.Generator
	brand   string
	limiter *rate.Limiter
	logger  *slog.Logger
	metrics *metrics.Metrics

	insights singleflight.Group

	mu      sync.Mutex
	pending map[string]struct{}
}

// New builds a Client. gen may be nil when no credential is configured; the
// client then degrades as described in the package documentation.
func New(gen types.Generator, opts ...Option) *Client {
	c := &Client{
		gen:     gen,
		brand:   defaultBrand,
		logger:  slog.Default(),
		pending: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether a generator is configured.
func (c *Client) Available() bool {
	return c.gen != nil
}

// Begin reserves the trigger identified by key. It fails with
// ErrRequestPending while an earlier reservation for key is held. The
// returned release func must be called once the request resolves.
func (c *Client) Begin(key string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.pending[key]; busy {
		return nil, ErrRequestPending
	}
	c.pending[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.pending, key)
			c.mu.Unlock()
		})
	}, nil
}

// GenerateProductDescription asks for marketing copy for a product. It fails
// with ErrMissingCredential when no generator is configured and returns
// service errors to the caller. An empty answer becomes FallbackDescription.
func (c *Client) GenerateProductDescription(ctx context.Context, name, category, keywords string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", models.NewValidationError("name", "cannot be empty", name)
	}
	if strings.TrimSpace(category) == "" {
		return "", models.NewValidationError("category", "cannot be empty", category)
	}
	if c.gen == nil {
		c.metrics.ObserveAssistant(callDescription, "unconfigured")
		return "", ErrMissingCredential
	}

	start := time.Now()
	text, err := c.complete(ctx, buildDescriptionPrompt(c.brand, name, category, keywords), map[string]any{
		types.OptSystem:    descriptionSystem,
		types.OptMaxTokens: descriptionMaxTokens,
	})
	if err != nil {
		c.metrics.ObserveAssistant(callDescription, "error")
		c.logger.Error("description generation failed", "product", name, "model", c.gen.Model(), "error", err)
		return "", fmt.Errorf("failed to generate description: %w", err)
	}

	c.logger.Info("description generated", "product", name, "model", c.gen.Model(), "duration_ms", time.Since(start).Milliseconds())
	if strings.TrimSpace(text) == "" {
		c.metrics.ObserveAssistant(callDescription, "empty")
		return FallbackDescription, nil
	}
	c.metrics.ObserveAssistant(callDescription, "ok")
	return strings.TrimSpace(text), nil
}

// GenerateBusinessInsight asks for a one-sentence tip. It never fails and
// never returns an empty string. Identical concurrent requests share one call.
func (c *Client) GenerateBusinessInsight(ctx context.Context, summary string) string {
	if c.gen == nil {
		c.metrics.ObserveAssistant(callInsight, "unconfigured")
		return InsightNoCredential
	}

	v, err, shared := c.insights.Do(summary, func() (interface{}, error) {
		return c.complete(ctx, buildInsightPrompt(c.brand, summary), map[string]any{
			types.OptSystem:    insightSystem,
			types.OptMaxTokens: insightMaxTokens,
		})
	})
	if err != nil {
		c.metrics.ObserveAssistant(callInsight, "fallback")
		c.logger.Warn("insight generation failed", "model", c.gen.Model(), "error", err)
		return InsightFailed
	}

	text := strings.TrimSpace(v.(string))
	if text == "" {
		c.metrics.ObserveAssistant(callInsight, "empty")
		return InsightEmpty
	}
	c.metrics.ObserveAssistant(callInsight, "ok")
	c.logger.Debug("insight generated", "shared", shared)
	return text
}

func (c *Client) complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit: %w", err)
		}
	}
	return c.gen.Complete(ctx, prompt, opts)
}
