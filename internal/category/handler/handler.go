package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/republica/storefront-service/internal/category"
	"github.com/republica/storefront-service/internal/category/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) RegisterRoutes(r gin.IRouter) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.list)
		categories.GET("/:id", h.get)
		categories.POST("", h.create)
		categories.PUT("/:id", h.update)
		categories.DELETE("/:id", h.delete)
	}
}

func (h *CategoryHandler) list(c *gin.Context) {
	categories, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category id"})
		return
	}

	cat, err := h.uc.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "category not found"})
			return
		}
		h.logger.Error("failed to get category", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to get category"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) create(c *gin.Context) {
	var input dto.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category id"})
		return
	}

	var input dto.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cat, err := h.uc.UpdateCategory(c.Request.Context(), id, &input)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "category not found"})
			return
		}
		h.logger.Error("failed to update category", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update category"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category id"})
		return
	}

	if err := h.uc.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "category not found"})
			return
		}
		h.logger.Error("failed to delete category", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete category"})
		return
	}
	c.Status(http.StatusNoContent)
}
