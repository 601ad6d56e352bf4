package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var complianceService ComplianceServiceInterface

func SetComplianceService(service ComplianceServiceInterface) {
	complianceService = service
}

// ExportData returns the full stored snapshot for one child.
func ExportData(c *gin.Context) {
	childID := c.Param("child_id")

	snapshot, err := complianceService.Export(childID)
	if err != nil {
		log.Printf("Error exporting data for child %s: %v", childID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// DeleteData erases everything stored for one child.
func DeleteData(c *gin.Context) {
	childID := c.Param("child_id")

	deleted, err := complianceService.EraseAll(childID)
	if err != nil {
		log.Printf("Error erasing data for child %s: %v", childID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedItems": deleted})
}
