package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var authService AuthServiceInterface

func SetAuthService(service AuthServiceInterface) {
	authService = service
}

func RegisterGuardian(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Lang     string `json:"lang"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	guardian, token, err := authService.RegisterGuardian(input.Name, input.Email, input.Password, input.Lang)
	if err != nil {
		log.Printf("Error registering guardian %s: %v", input.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "data": guardian})
}

func LoginGuardian(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	guardian, token, err := authService.LoginGuardian(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "data": guardian})
}

// UpdateDeviceToken registers the dashboard's FCM token for push
// alerts about flagged questions.
func UpdateDeviceToken(c *gin.Context) {
	guardianID, exists := c.Get("guardian_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		DeviceToken string `json:"deviceToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := authService.UpdateDeviceToken(guardianID.(uint), input.DeviceToken); err != nil {
		log.Printf("Error updating device token for guardian %d: %v", guardianID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
