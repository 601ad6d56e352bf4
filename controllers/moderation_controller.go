package controllers

import (
	"KidAsk/models"
	"KidAsk/services"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var moderationService ModerationServiceInterface

func SetModerationService(service ModerationServiceInterface) {
	moderationService = service
}

// GetFlagged lists the child's flagged questions for the dashboard.
func GetFlagged(c *gin.Context) {
	childID := c.Param("child_id")

	flagged, err := questionService.Flagged(childID)
	if err != nil {
		log.Printf("Error fetching flagged questions for child %s: %v", childID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"flagged": flagged})
}

// UpdateFilters replaces the child's custom keyword settings.
func UpdateFilters(c *gin.Context) {
	childID := c.Param("child_id")

	var input models.FilterSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter settings"})
		return
	}

	if err := questionService.UpdateFilters(childID, input); err != nil {
		log.Printf("Error updating filters for child %s: %v", childID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ModerateQuestion applies the parent's approve/reject decision to a
// flagged question.
func ModerateQuestion(c *gin.Context) {
	flaggedID := c.Param("flagged_id")

	var input struct {
		Action   string `json:"action"`
		ChildID  string `json:"childId"`
		ChildAge int    `json:"childAge"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := moderationService.Moderate(flaggedID, input.Action, input.ChildID, input.ChildAge)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "action": input.Action})
	case errors.Is(err, services.ErrFlaggedNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
	case errors.Is(err, services.ErrAlreadyModerated):
		c.JSON(http.StatusConflict, gin.H{"error": "Question already moderated"})
	case errors.Is(err, services.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	default:
		log.Printf("Error moderating question %s: %v", flaggedID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
