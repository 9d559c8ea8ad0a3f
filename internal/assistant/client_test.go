package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/olprint/backoffice/internal/metrics"
	"github.com/olprint/backoffice/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text    string
	err     error
	delay   time.Duration
	calls   atomic.Int32
	prompts []string
	mu      sync.Mutex
}

func (g *stubGenerator) Complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	g.calls.Add(1)
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	return g.text, g.err
}

func (g *stubGenerator) Model() string { return "stub" }

func TestGenerateProductDescription(t *testing.T) {
	gen := &stubGenerator{text: "  Impressora fiável e económica.  "}
	c := New(gen, WithBrand("GrafiPrint"))

	out, err := c.GenerateProductDescription(context.Background(), "Epson L3250", "Impressoras", "wi-fi, tanque")
	require.NoError(t, err)
	assert.Equal(t, "Impressora fiável e económica.", out)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "gráfica chamada GrafiPrint")
	assert.Contains(t, gen.prompts[0], "Produto: Epson L3250")
	assert.Contains(t, gen.prompts[0], "Categoria: Impressoras")
	assert.Contains(t, gen.prompts[0], "Características/Keywords: wi-fi, tanque")
}

func TestGenerateProductDescriptionFailures(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		_, err := New(nil).GenerateProductDescription(context.Background(), "A", "B", "")
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("service error propagates", func(t *testing.T) {
		boom := errors.New("503 unavailable")
		_, err := New(&stubGenerator{err: boom}).GenerateProductDescription(context.Background(), "A", "B", "")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty answer falls back", func(t *testing.T) {
		out, err := New(&stubGenerator{text: " \n"}).GenerateProductDescription(context.Background(), "A", "B", "")
		require.NoError(t, err)
		assert.Equal(t, FallbackDescription, out)
	})

	t.Run("name and category required", func(t *testing.T) {
		gen := &stubGenerator{text: "x"}
		c := New(gen)
		_, err := c.GenerateProductDescription(context.Background(), "", "B", "")
		assert.True(t, models.IsValidation(err))
		_, err = c.GenerateProductDescription(context.Background(), "A", " ", "")
		assert.True(t, models.IsValidation(err))
		assert.Zero(t, gen.calls.Load())
	})
}

func TestGenerateBusinessInsightNeverFails(t *testing.T) {
	tests := []struct {
		name string
		c    *Client
		want string
	}{
		{"missing credential", New(nil), InsightNoCredential},
		{"service error", New(&stubGenerator{err: errors.New("timeout")}), InsightFailed},
		{"empty answer", New(&stubGenerator{text: ""}), InsightEmpty},
		{"real answer", New(&stubGenerator{text: "Promova tinteiros hoje."}), "Promova tinteiros hoje."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.GenerateBusinessInsight(context.Background(), "3 pedidos")
			assert.NotEmpty(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateBusinessInsightPrompt(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	New(gen).GenerateBusinessInsight(context.Background(), "Vendas altas")
	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasSuffix(gen.prompts[0], "Dados: Vendas altas"))
	assert.Contains(t, gen.prompts[0], "OLPrint")
}

func TestConcurrentInsightsShareOneCall(t *testing.T) {
	gen := &stubGenerator{text: "dica", delay: 100 * time.Millisecond}
	c := New(gen)

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.GenerateBusinessInsight(context.Background(), "same digest")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "dica", r)
	}
	assert.Less(t, gen.calls.Load(), int32(5))
}

func TestBegin(t *testing.T) {
	c := New(nil)

	release, err := c.Begin("product-form")
	require.NoError(t, err)

	_, err = c.Begin("product-form")
	assert.ErrorIs(t, err, ErrRequestPending)

	other, err := c.Begin("insight")
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := c.Begin("product-form")
	require.NoError(t, err)
	again()
}

func TestRateLimitHonoursContext(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	c := New(gen, WithRateLimit(1))

	_, err := c.GenerateProductDescription(context.Background(), "A", "B", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.GenerateProductDescription(ctx, "A", "B", "")
	assert.Error(t, err)
	assert.Equal(t, InsightFailed, c.GenerateBusinessInsight(ctx, "x"))
	assert.Equal(t, int32(1), gen.calls.Load())
}

func TestMetricsOutcomes(t *testing.T) {
	m := metrics.New()
	c := New(&stubGenerator{err: errors.New("down")}, WithMetrics(m))

	c.GenerateBusinessInsight(context.Background(), "x")
	_, _ = c.GenerateProductDescription(context.Background(), "A", "B", "")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssistantRequests.WithLabelValues("insight", "fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssistantRequests.WithLabelValues("description", "error")))
}
