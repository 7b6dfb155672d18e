package translate

import (
	"strings"

	"github.com/blogsum/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/translate", h.translate)
}

func (h *Handler) translate(c *gin.Context) {
	var dto translateDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Text) == "" {
		response.BadRequest(c, "No text provided")
		return
	}

	result := h.svc.Translate(c.Request.Context(), dto.Text)
	response.OK(c, result)
}
