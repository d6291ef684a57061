package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/order"
	"github.com/republica/storefront-service/internal/order/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) RegisterRoutes(r gin.IRouter) {
	orders := r.Group("/orders")
	{
		orders.GET("", h.list)
		orders.GET("/:id", h.get)
		orders.POST("", h.create)
		orders.PUT("/:id/status", h.changeStatus)
		orders.DELETE("/:id", h.delete)
	}
}

func (h *OrderHandler) list(c *gin.Context) {
	orders, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	o, err := h.uc.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
			return
		}
		h.logger.Error("failed to get order", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to get order"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) create(c *gin.Context) {
	var input dto.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	o, err := h.uc.CreateOrder(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": o.ID, "message": "order created"})
}

func (h *OrderHandler) changeStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	var input dto.ChangeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err = h.uc.ChangeStatus(c.Request.Context(), id, model.OrderStatus(input.Status))

	var stockErr *order.InsufficientStockError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
	case errors.Is(err, order.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, order.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
	case errors.Is(err, order.ErrOrderFinalized), errors.Is(err, order.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{"message": stockErr.Error()})
	default:
		h.logger.Error("failed to change order status",
			zap.Int64("id", id), zap.String("status", input.Status), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to change order status"})
	}
}

func (h *OrderHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	if err := h.uc.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
			return
		}
		h.logger.Error("failed to delete order", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete order"})
		return
	}
	c.Status(http.StatusNoContent)
}
