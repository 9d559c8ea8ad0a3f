// Package report builds the management PDF: a title block, the executive
// summary stats, the latest orders table and the low-stock table, with a
// numbered confidential footer on every page.
//
// Layout is computed first as plain data so pagination can be checked without
// parsing PDF bytes. Rendering then replays the layout with fpdf.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/olprint/backoffice/internal/metrics"
	"github.com/olprint/backoffice/internal/models"

	_ "time/tzdata"
)

const reportTimezone = "Europe/Lisbon"

// Input is the data a report is generated from. Generate copies the slices,
// so later store mutations do not reach a report in progress.
type Input struct {
	Orders   []models.Order
	Products []models.Product
	Stats    []models.Stat
}

func (in Input) snapshot() Input {
	return Input{
		Orders:   append([]models.Order(nil), in.Orders...),
		Products: append([]models.Product(nil), in.Products...),
		Stats:    append([]models.Stat(nil), in.Stats...),
	}
}

// Document is a generated report.
type Document struct {
	Filename    string
	GeneratedAt time.Time
	Layout      Layout
	PDF         []byte
}

type Option func(*Generator)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

type Generator struct {
	brand   string
	now     func() time.Time
	loc     *time.Location
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewGenerator(brand string, opts ...Option) *Generator {
	loc, err := time.LoadLocation(reportTimezone)
	if err != nil {
		loc = time.UTC
	}
	g := &Generator{
		brand:  brand,
		now:    time.Now,
		loc:    loc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Layout plans the pages of a report generated now, without rendering.
func (g *Generator) Layout(in Input) Layout {
	return plan(g.brand, FormatTimestamp(g.now().In(g.loc)), in.snapshot())
}

// Generate lays out and renders a report.
func (g *Generator) Generate(in Input) (*Document, error) {
	at := g.now().In(g.loc)
	in = in.snapshot()

	layout := plan(g.brand, FormatTimestamp(at), in)
	pdf, err := render(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	doc := &Document{
		Filename:    Filename(g.brand, at),
		GeneratedAt: at,
		Layout:      layout,
		PDF:         pdf,
	}
	g.metrics.ObserveReport()
	g.logger.Info("report generated",
		"file", doc.Filename,
		"pages", layout.PageCount(),
		"orders", layout.RowCount(TableOrders),
		"low_stock", layout.RowCount(TableLowStock),
		"bytes", len(pdf))
	return doc, nil
}

// Save writes doc into dir under its own filename and returns the full path.
func (g *Generator) Save(dir string, doc *Document) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, doc.PDF, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
