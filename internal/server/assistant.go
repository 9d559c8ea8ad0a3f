package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/olprint/backoffice/internal/assistant"
	"github.com/olprint/backoffice/internal/dashboard"
	"github.com/olprint/backoffice/internal/models"
	"github.com/olprint/backoffice/internal/report"
)

type descriptionRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Keywords string `json:"keywords"`
}

type themeRequest struct {
	Dark *bool `json:"dark" binding:"required"`
}

func (s *Server) generateDescription(c *gin.Context) {
	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	release, err := s.assistant.Begin("description:" + strings.ToLower(strings.TrimSpace(req.Name)))
	if err != nil {
		s.fail(c, err)
		return
	}
	defer release()

	text, err := s.assistant.GenerateProductDescription(c.Request.Context(), req.Name, req.Category, req.Keywords)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"description": text})
	case models.IsValidation(err), errors.Is(err, assistant.ErrMissingCredential):
		s.fail(c, err)
	default:
		s.logger.Warn("description request failed", "product", req.Name, "error", err)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func (s *Server) businessInsight(c *gin.Context) {
	summary := dashboard.Digest(s.catalog.Snapshot(), s.orders.Snapshot())
	c.JSON(http.StatusOK, gin.H{"insight": s.assistant.GenerateBusinessInsight(c.Request.Context(), summary)})
}

func (s *Server) downloadReport(c *gin.Context) {
	products, list := s.catalog.Snapshot(), s.orders.Snapshot()
	doc, err := s.reports.Generate(report.Input{
		Orders:   list,
		Products: products,
		Stats:    dashboard.Summary(products, list),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}

func (s *Server) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dark": s.darkMode.Load()})
}

func (s *Server) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s.darkMode.Store(*req.Dark)
	c.JSON(http.StatusOK, gin.H{"dark": *req.Dark})
}
