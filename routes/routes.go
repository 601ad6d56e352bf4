package routes

import (
	"KidAsk/controllers"
	"KidAsk/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Public routes used by the child app
	r.GET("/health", controllers.HealthCheck)
	r.POST("/process-question", controllers.ProcessQuestion)
	r.GET("/history/:child_id", controllers.GetHistory)

	// Guardian account routes
	r.POST("/auth/register", controllers.RegisterGuardian)
	r.POST("/auth/login", controllers.LoginGuardian)

	// Guardian dashboard routes
	dashboard := r.Group("/")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/flagged/:child_id", controllers.GetFlagged)
		dashboard.POST("/filters/:child_id", controllers.UpdateFilters)
		dashboard.POST("/moderate/:flagged_id", controllers.ModerateQuestion)

		dashboard.GET("/export/:child_id", controllers.ExportData)
		dashboard.DELETE("/delete/:child_id", controllers.DeleteData)

		dashboard.POST("/profiles", controllers.CreateProfile)
		dashboard.GET("/profiles", controllers.ListProfiles)
		dashboard.GET("/profiles/:child_id", controllers.GetProfile)
		dashboard.POST("/device-token", controllers.UpdateDeviceToken)

		dashboard.GET("/ws", controllers.ServeWs)
	}
}
