package controllers

import (
	"KidAsk/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var profileService ProfileServiceInterface

func SetProfileService(service ProfileServiceInterface) {
	profileService = service
}

func CreateProfile(c *gin.Context) {
	guardianID, exists := c.Get("guardian_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Name      string `json:"name" binding:"required"`
		BirthYear int    `json:"birthYear" binding:"required"`
		Avatar    string `json:"avatar"`
		Color     string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	profile, err := profileService.CreateProfile(guardianID.(uint), models.ChildProfile{
		Name:      input.Name,
		BirthYear: input.BirthYear,
		Avatar:    input.Avatar,
		Color:     input.Color,
	})
	if err != nil {
		log.Printf("Error creating profile for guardian %d: %v", guardianID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": profile})
}

func ListProfiles(c *gin.Context) {
	guardianID, exists := c.Get("guardian_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profiles, err := profileService.ListProfiles(guardianID.(uint))
	if err != nil {
		log.Printf("Error listing profiles for guardian %d: %v", guardianID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func GetProfile(c *gin.Context) {
	childID := c.Param("child_id")

	profile, err := profileService.GetProfile(childID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}
