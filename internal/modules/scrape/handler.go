package scrape

import (
	"errors"

	"github.com/blogsum/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scrape", h.scrape)
}

// POST /scrape
func (h *Handler) scrape(c *gin.Context) {
	var dto scrapeDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.URL == "" {
		response.BadRequest(c, "No url provided")
		return
	}

	result, err := h.svc.Scrape(c.Request.Context(), dto.URL)
	if err != nil {
		var extractionErr *ExtractionError
		if errors.As(err, &extractionErr) {
			response.UnprocessableEntity(c, "Failed to extract main content", gin.H{
				"url":  extractionErr.URL,
				"text": extractionErr.Text,
			})
			return
		}
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			response.InternalError(c, "Scraping failed", gin.H{
				"url":   fetchErr.URL,
				"error": fetchErr.Err.Error(),
			})
			return
		}
		response.InternalError(c, "Scraping failed", nil)
		return
	}

	response.OK(c, scrapeResponse{Text: result.Text})
}
