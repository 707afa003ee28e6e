package scan

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type analyzeRequest struct {
	Images []string `json:"images"`
}

// Analyze runs one menu scan. Limit and missing-profile conditions are
// user-recoverable and get routes, not opaque 500s.
func (h *Handler) Analyze(c *gin.Context) {
	userID := c.GetString("userID")

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if len(req.Images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "images are required"})
		return
	}

	output, err := h.service.AnalyzeMenu(c.Request.Context(), userID, req.Images)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProfile):
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
				"route": "onboarding",
			})
		case errors.Is(err, ErrDailyScanLimitReached):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": err.Error(),
				"route": "paywall",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, output)
}

// GetResult returns a stored scan result by id.
func (h *Handler) GetResult(c *gin.Context) {
	userID := c.GetString("userID")
	resultID := c.Param("id")

	result, err := h.service.GetResult(c.Request.Context(), userID, resultID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "scan result not found"})
		return
	}

	c.JSON(http.StatusOK, result)
}
