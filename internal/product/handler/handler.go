package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/republica/storefront-service/internal/product"
	"github.com/republica/storefront-service/internal/product/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(r gin.IRouter) {
	products := r.Group("/products")
	{
		products.GET("", h.list)
		products.GET("/:id", h.get)
		products.POST("", h.create)
		products.PUT("/:id", h.update)
		products.DELETE("/:id", h.delete)
	}
}

func (h *ProductHandler) respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, product.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
	case errors.Is(err, product.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, product.ErrUnknownRef):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		h.logger.Error("product "+action+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to " + action + " product"})
	}
}

func (h *ProductHandler) list(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		h.respondError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "delete")
		return
	}
	c.Status(http.StatusNoContent)
}
