package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not set"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) SaveProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var user UserProfile
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SaveProfile(c.Request.Context(), userID, &user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile saved"})
}

func (h *Handler) GetPrefs(c *gin.Context) {
	userID := c.GetString("userID")

	prefs, err := h.service.GetPrefs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) RecordLaunch(c *gin.Context) {
	userID := c.GetString("userID")

	count, err := h.service.IncrementLaunchCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"launchCount": count})
}

func (h *Handler) DismissSignInNudge(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.MarkSignInNudgeDismissed(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "dismissed"})
}

type saveScansRequest struct {
	SaveScansToPhotos bool `json:"saveScansToPhotos"`
}

func (h *Handler) SetSaveScansPreference(c *gin.Context) {
	userID := c.GetString("userID")

	var req saveScansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetSaveScansPreference(c.Request.Context(), userID, req.SaveScansToPhotos); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "preference saved"})
}
