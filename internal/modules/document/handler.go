// Package document exposes raw scraped text persistence into the
// document store.
package document

import (
	"strings"

	"github.com/blogsum/core/internal/pkg/docstore"
	"github.com/blogsum/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type saveDTO struct {
	URL  string `json:"url" binding:"required"`
	Text string `json:"text" binding:"required"`
}

type Handler struct {
	store  *docstore.Store
	logger *zap.Logger
}

func NewHandler(store *docstore.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/save", h.save)
}

func (h *Handler) save(c *gin.Context) {
	var dto saveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing url or text")
		return
	}
	if strings.TrimSpace(dto.URL) == "" || strings.TrimSpace(dto.Text) == "" {
		response.BadRequest(c, "Missing url or text")
		return
	}

	if err := h.store.SaveText(c.Request.Context(), dto.URL, dto.Text); err != nil {
		h.logger.Error("failed to save document", zap.String("url", dto.URL), zap.Error(err))
		response.InternalError(c, "Failed to save to database", nil)
		return
	}

	response.OK(c, gin.H{"success": true})
}
