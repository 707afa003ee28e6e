package meal

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexshipulin/Buddy/internal/llm"
	"github.com/alexshipulin/Buddy/internal/profile"
)

type Handler struct {
	service  *Service
	profiles profile.Repository
}

func NewHandler(service *Service, profiles profile.Repository) *Handler {
	return &Handler{service: service, profiles: profiles}
}

type addMealRequest struct {
	Title    string      `json:"title"`
	Macros   MacroTotals `json:"macros"`
	Notes    string      `json:"notes"`
	Source   string      `json:"source"`
	ImageURI string      `json:"imageUri"`
}

func (h *Handler) AddMeal(c *gin.Context) {
	userID := c.GetString("userID")

	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	source := req.Source
	if source == "" {
		source = SourceText
	}

	entry := &MealEntry{
		Title:    req.Title,
		Macros:   req.Macros,
		Notes:    req.Notes,
		Source:   source,
		ImageURI: req.ImageURI,
	}

	if err := h.service.AddMeal(c.Request.Context(), userID, entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": entry.ID})
}

type addMealPhotoRequest struct {
	Image string `json:"image"`
	Title string `json:"title"`
}

// AddMealPhoto estimates macros from a photo and logs the meal in one
// call. Analysis failures still log the meal with fallback macros.
func (h *Handler) AddMealPhoto(c *gin.Context) {
	userID := c.GetString("userID")

	var req addMealPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	macros, description := h.service.AnalyzeMealPhoto(c.Request.Context(), inlineImage(req.Image))

	title := req.Title
	if title == "" {
		title = "Meal photo"
	}

	entry := &MealEntry{
		Title:    title,
		Macros:   macros,
		Notes:    description,
		Source:   SourcePhoto,
		ImageURI: req.Image,
	}
	if err := h.service.AddMeal(c.Request.Context(), userID, entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          entry.ID,
		"macros":      macros,
		"description": description,
	})
}

// inlineImage accepts a data URI or raw base64 payload.
func inlineImage(ref string) *llm.InlineImage {
	if strings.HasPrefix(ref, "data:") {
		meta, data, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
		if !ok || data == "" {
			return nil
		}
		mimeType := "image/jpeg"
		if m, _, found := strings.Cut(meta, ";"); found && m != "" {
			mimeType = m
		}
		return &llm.InlineImage{MIMEType: mimeType, Data: data}
	}
	return &llm.InlineImage{MIMEType: "image/jpeg", Data: ref}
}

func (h *Handler) GetMeal(c *gin.Context) {
	userID := c.GetString("userID")
	mealID := c.Param("id")

	entry, err := h.service.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// TodayMacros returns today's totals plus the personal targets when
// the profile carries base parameters.
func (h *Handler) TodayMacros(c *gin.Context) {
	userID := c.GetString("userID")

	totals, err := h.service.TodayMacros(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"totals": totals}

	user, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err == nil {
		if targets := ComputePersonalTargets(user); targets != nil {
			resp["targets"] = targets
		}
	}

	c.JSON(http.StatusOK, resp)
}
