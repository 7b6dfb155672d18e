package summarize

import (
	"errors"
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
	r.POST("/summarize", h.summarize)
}

func (h *Handler) summarize(c *gin.Context) {
	var dto summarizeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "No text provided")
		return
	}
	if strings.TrimSpace(dto.Text) == "" {
		response.BadRequest(c, "No text provided")
		return
	}
	if strings.TrimSpace(dto.URL) == "" {
		response.BadRequest(c, "No url provided")
		return
	}

	result, err := h.svc.Summarize(c.Request.Context(), dto.URL, dto.Text)
	if err != nil {
		if errors.Is(err, ErrTextTooShort) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "Summarization failed", gin.H{"error": err.Error()})
		return
	}

	response.OK(c, result)
}
