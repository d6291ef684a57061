package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/republica/storefront-service/internal/inventory"
	"github.com/republica/storefront-service/internal/inventory/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) RegisterRoutes(r gin.IRouter) {
	r.PATCH("/products/:id/stock", h.adjustStock)
	r.GET("/stock/movements", h.listMovements)
}

func (h *InventoryHandler) adjustStock(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	var input dto.AdjustStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be a number"})
		return
	}

	newQuantity, err := h.uc.AdjustStock(c.Request.Context(), productID, &input)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
		case errors.Is(err, inventory.ErrBusy):
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": err.Error()})
		default:
			h.logger.Error("stock adjustment failed",
				zap.Int64("product_id", productID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to adjust stock"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"new_stock_quantity": newQuantity})
}

func (h *InventoryHandler) listMovements(c *gin.Context) {
	filters := &dto.MovementFilters{
		MovementType: c.Query("type"),
	}
	if v := c.Query("product_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product_id"})
			return
		}
		filters.ProductID = id
	}
	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid page"})
			return
		}
		filters.Page = page
	}
	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid page_size"})
			return
		}
		filters.PageSize = size
	}

	movements, err := h.uc.ListMovements(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list stock movements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list stock movements"})
		return
	}
	c.JSON(http.StatusOK, movements)
}
