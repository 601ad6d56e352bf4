package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var questionService QuestionServiceInterface

func SetQuestionService(service QuestionServiceInterface) {
	questionService = service
}

// ProcessQuestion runs one child question through the filter pipeline
// and returns either an answer or a flagged notice.
func ProcessQuestion(c *gin.Context) {
	var input struct {
		Question string `json:"question"`
		ChildID  string `json:"childId"`
		ChildAge int    `json:"childAge"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if input.Question == "" || input.ChildID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	result, err := questionService.ProcessQuestion(input.Question, input.ChildID, input.ChildAge)
	if err != nil {
		log.Printf("Error processing question for child %s: %v", input.ChildID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if result.Flagged {
		c.JSON(http.StatusOK, gin.H{
			"flagged": true,
			"reason":  result.Reason,
			"message": result.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"answer":          result.Answer,
		"videoSuggestion": result.VideoSuggestion,
		"conversationId":  result.ConversationID,
	})
}

// GetHistory returns the child's recent conversations, newest first.
func GetHistory(c *gin.Context) {
	childID := c.Param("child_id")

	conversations, err := questionService.History(childID)
	if err != nil {
		log.Printf("Error fetching history for child %s: %v", childID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}
