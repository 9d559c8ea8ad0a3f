package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olprint/backoffice/internal/models"
	"github.com/olprint/backoffice/internal/orders"
)

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) listOrders(c *gin.Context) {
	status, err := models.ParseStatusFilter(c.Query("status"))
	if err != nil {
		s.fail(c, err)
		return
	}
	list, err := s.orders.ListOrders(orders.Filter{
		Status: status,
		From:   c.Query("from"),
		To:     c.Query("to"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.GetOrder(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) orderItems(c *gin.Context) {
	o, err := s.orders.GetOrder(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o.ItemBreakdown())
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		s.fail(c, err)
		return
	}
	o, err := s.orders.UpdateStatus(c.Param("id"), status)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info("order status updated", "order_id", o.ID, "status", o.Status.Key())
	c.JSON(http.StatusOK, o)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := confirmed(c, "delete order", id); err != nil {
		s.fail(c, err)
		return
	}
	if err := s.orders.DeleteOrder(id); err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info("order deleted", "order_id", id)
	c.Status(http.StatusNoContent)
}
