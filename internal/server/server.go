package server

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/olprint/backoffice/internal/assistant"
	"github.com/olprint/backoffice/internal/catalog"
	"github.com/olprint/backoffice/internal/metrics"
	"github.com/olprint/backoffice/internal/orders"
	"github.com/olprint/backoffice/internal/report"
)

const (
	serviceName = "olprint-backoffice"
	version     = "0.1.0"
)

// Deps are the components the API exposes. Metrics and Logger are optional.
type Deps struct {
	Catalog   *catalog.Store
	Orders    *orders.Store
	Assistant *assistant.Client
	Reports   *report.Generator
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

type Server struct {
	router    *gin.Engine
	catalog   *catalog.Store
	orders    *orders.Store
	assistant *assistant.Client
	reports   *report.Generator
	metrics   *metrics.Metrics
	logger    *slog.Logger

	// darkMode is the theme preference of the presentation side.
	darkMode atomic.Bool
}

// NewServer creates a new server instance
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:    router,
		catalog:   deps.Catalog,
		orders:    deps.Orders,
		assistant: deps.Assistant,
		reports:   deps.Reports,
		metrics:   deps.Metrics,
		logger:    logger,
	}
	router.Use(server.requestLogger())

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/stats", s.stats)

		api.GET("/products", s.listProducts)
		api.POST("/products", s.addProduct)
		api.GET("/products/:id", s.getProduct)
		api.PUT("/products/:id", s.updateProduct)
		api.DELETE("/products/:id", s.deleteProduct)

		api.GET("/categories", s.listCategories)
		api.POST("/categories", s.addCategory)
		api.DELETE("/categories/:name", s.deleteCategory)

		api.GET("/orders", s.listOrders)
		api.GET("/orders/:id", s.getOrder)
		api.GET("/orders/:id/items", s.orderItems)
		api.PUT("/orders/:id/status", s.updateOrderStatus)
		api.DELETE("/orders/:id", s.deleteOrder)

		api.POST("/assistant/description", s.generateDescription)
		api.GET("/assistant/insight", s.businessInsight)

		api.GET("/report", s.downloadReport)

		api.GET("/preferences/theme", s.getTheme)
		api.POST("/preferences/theme", s.setTheme)
	}

	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   serviceName,
		"version":   version,
		"assistant": s.assistant.Available(),
	})
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
