package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/republica/storefront-service/internal/brand"
	"github.com/republica/storefront-service/internal/brand/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type BrandHandler struct {
	uc     brand.UseCase
	logger logger.ZapLogger
}

func NewBrandHandler(uc brand.UseCase, log logger.ZapLogger) *BrandHandler {
	return &BrandHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *BrandHandler) RegisterRoutes(r gin.IRouter) {
	brands := r.Group("/brands")
	{
		brands.GET("", h.list)
		brands.GET("/:id", h.get)
		brands.POST("", h.create)
		brands.PUT("/:id", h.update)
		brands.DELETE("/:id", h.delete)
	}
}

func (h *BrandHandler) respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, brand.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "brand not found"})
	case errors.Is(err, brand.ErrUnknownCategory):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		h.logger.Error("brand "+action+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to " + action + " brand"})
	}
}

func (h *BrandHandler) list(c *gin.Context) {
	brands, err := h.uc.ListBrands(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid brand id"})
		return
	}

	b, err := h.uc.GetBrand(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) create(c *gin.Context) {
	var input dto.CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	b, err := h.uc.CreateBrand(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BrandHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid brand id"})
		return
	}

	var input dto.UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	b, err := h.uc.UpdateBrand(c.Request.Context(), id, &input)
	if err != nil {
		h.respondError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid brand id"})
		return
	}

	if err := h.uc.DeleteBrand(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "delete")
		return
	}
	c.Status(http.StatusNoContent)
}
