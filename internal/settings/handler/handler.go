package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/republica/storefront-service/internal/settings"
	"github.com/republica/storefront-service/internal/settings/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	uc     settings.UseCase
	logger logger.ZapLogger
}

func NewSettingsHandler(uc settings.UseCase, log logger.ZapLogger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SettingsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/settings", h.get)
	r.PUT("/settings", h.update)
}

func (h *SettingsHandler) get(c *gin.Context) {
	s, err := h.uc.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "store settings not found"})
			return
		}
		h.logger.Error("failed to get settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to get settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) update(c *gin.Context) {
	var input dto.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s, err := h.uc.UpdateSettings(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to update settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}
