package trial

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Status reports the trial window and quota for the paywall screen.
func (h *Handler) Status(c *gin.Context) {
	userID := c.GetString("userID")

	state, err := h.service.GetTrial(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isPremium":     state.IsPremium,
		"trialStartsAt": state.TrialStartsAt,
		"trialEndsAt":   state.TrialEndsAt,
		"trialDaysLeft": DaysLeft(state, time.Now()),
	})
}

// Upgrade is the purchase-flow callback that flips the premium flag.
func (h *Handler) Upgrade(c *gin.Context) {
	userID := c.GetString("userID")

	state, err := h.service.Upgrade(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isPremium": state.IsPremium,
		"message":   "premium unlocked",
	})
}
