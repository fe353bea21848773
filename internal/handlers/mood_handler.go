package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/models"
)

type MoodRequest struct {
	DayIndex    int    `json:"dayIndex"`
	MoodEmoji   string `json:"moodEmoji"`
	MoodScore   int    `json:"moodScore"`
	StressLevel int    `json:"stressLevel"`
}

// CreateMood records a mood check-in for the authenticated user.
func (h *Handler) CreateMood(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req MoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.MoodScore < 0 || req.MoodScore > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "moodScore must be between 0 and 5"})
		return
	}

	entry := models.MoodEntry{
		UserID:      userID,
		DayIndex:    req.DayIndex,
		MoodEmoji:   req.MoodEmoji,
		MoodScore:   req.MoodScore,
		StressLevel: req.StressLevel,
	}
	if err := h.Moods.Create(c.Request.Context(), &entry); err != nil {
		serverError(c, "Mood insert failed", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListMoods returns the authenticated user's mood history, newest first.
func (h *Handler) ListMoods(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	entries, err := h.Moods.FindByUser(c.Request.Context(), userID)
	if err != nil {
		serverError(c, "Mood lookup failed", err)
		return
	}
	if entries == nil {
		entries = make([]models.MoodEntry, 0)
	}
	c.JSON(http.StatusOK, entries)
}

// authenticatedUserID reads the user id the auth middleware stored in the
// context, writing the error response itself on failure.
func authenticatedUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDHex, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDHex.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid user ID in token"})
		return primitive.NilObjectID, false
	}
	return userID, true
}
