package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olprint/backoffice/internal/dashboard"
	"github.com/olprint/backoffice/internal/models"
)

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// listProducts answers ?search= (name or category) and ?critical=true.
func (s *Server) listProducts(c *gin.Context) {
	if c.Query("critical") == "true" {
		c.JSON(http.StatusOK, s.catalog.CriticalStock())
		return
	}
	c.JSON(http.StatusOK, s.catalog.ListProducts(c.Query("search")))
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.GetProduct(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) addProduct(c *gin.Context) {
	var fields models.ProductFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, err)
		return
	}
	p, err := s.catalog.AddProduct(fields)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info("product created", "product_id", p.ID, "name", p.Name)
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProduct(c *gin.Context) {
	var fields models.ProductFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, err)
		return
	}
	p, err := s.catalog.UpdateProduct(c.Param("id"), fields)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info("product updated", "product_id", p.ID)
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := confirmed(c, "delete product", id); err != nil {
		s.fail(c, err)
		return
	}
	if err := s.catalog.DeleteProduct(id); err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info("product deleted", "product_id", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.ListCategories())
}

func (s *Server) addCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.catalog.AddCategory(req.Name); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.catalog.ListCategories())
}

func (s *Server) deleteCategory(c *gin.Context) {
	name := c.Param("name")
	if err := confirmed(c, "delete category", name); err != nil {
		s.fail(c, err)
		return
	}
	if err := s.catalog.DeleteCategory(name); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, dashboard.Summary(s.catalog.Snapshot(), s.orders.Snapshot()))
}
