package controllers

import (
	"KidAsk/websocket"
	"net/http"

	"github.com/gin-gonic/gin"
)

var WebSocketHub *websocket.Hub

func SetWebSocketHub(hub *websocket.Hub) {
	WebSocketHub = hub
	go WebSocketHub.Run()
}

// ServeWs subscribes the guardian dashboard to the live event feed for
// one child.
func ServeWs(c *gin.Context) {
	if _, exists := c.Get("guardian_id"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	childID := c.Query("child_id")
	if childID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "child_id is required"})
		return
	}

	websocket.ServeWs(WebSocketHub, c.Writer, c.Request, childID)
}
