package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 30

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List returns history entries newest-first.
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	items, err := h.repo.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
