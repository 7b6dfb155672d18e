package pipeline

import (
	"strings"

	"github.com/blogsum/core/internal/pkg/pagination"
	"github.com/blogsum/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc  *Service
	repo *SummaryRepo
}

func NewHandler(svc *Service, repo *SummaryRepo) *Handler {
	return &Handler{svc: svc, repo: repo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/pipeline", h.run)
	r.GET("/summaries", h.list)
}

func (h *Handler) run(c *gin.Context) {
	var dto pipelineDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.URL) == "" {
		response.BadRequest(c, "No url provided")
		return
	}

	response.OK(c, h.svc.Run(c.Request.Context(), dto.URL))
}

// GET /summaries returns previously persisted results, newest first.
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	rows, meta, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c, "Failed to load summaries", nil)
		return
	}

	response.OK(c, gin.H{
		"data":       rows,
		"pagination": meta,
	})
}
