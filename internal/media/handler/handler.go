package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/republica/storefront-service/internal/media"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type MediaHandler struct {
	uploader   media.Uploader
	baseFolder string
	logger     logger.ZapLogger
}

func NewMediaHandler(uploader media.Uploader, baseFolder string, log logger.ZapLogger) *MediaHandler {
	return &MediaHandler{
		uploader:   uploader,
		baseFolder: baseFolder,
		logger:     log,
	}
}

func (h *MediaHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/upload", h.upload)
}

func (h *MediaHandler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no file sent"})
		return
	}

	// The frontend tags uploads by entity kind (category, brand, product,
	// logo) and each kind gets its own folder.
	kind := c.PostForm("type")
	if kind == "" {
		kind = "outros"
	}
	folder := h.baseFolder + "/" + kind

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to read upload"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), file, folder, fileHeader.Filename)
	if err != nil {
		h.logger.Error("media upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
