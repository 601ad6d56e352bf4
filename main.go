package main

import (
	"KidAsk/config"
	"KidAsk/controllers"
	"KidAsk/repositories/impl"
	"KidAsk/routes"
	"KidAsk/services"
	"KidAsk/websocket"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Initialize database and Firebase
	config.InitDatabase()
	config.InitFirebase()

	// Initialize repositories
	kvRepo := impl.NewKVRepository(config.DB)
	conversationRepo := impl.NewConversationRepository(kvRepo)
	flaggedRepo := impl.NewFlaggedRepository(kvRepo)
	filterRepo := impl.NewFilterRepository(kvRepo)
	guardianRepo := impl.NewGuardianRepository(config.DB)
	profileRepo := impl.NewProfileRepository(config.DB)

	// Initialize the dashboard event hub
	hub := websocket.NewHub()
	controllers.SetWebSocketHub(hub)

	// Initialize services
	filterService := services.NewFilterService(config.DefaultContentFilters())
	responseService := services.NewResponseService(
		config.DefaultAnswerCatalog(),
		config.DefaultVideoTopics(),
		config.DefaultVideoSuggestion,
	)
	notificationService := services.NewNotificationService(config.FCMClient, guardianRepo, profileRepo)
	questionService := services.NewQuestionService(
		conversationRepo, flaggedRepo, filterRepo,
		filterService, responseService, notificationService, hub,
	)
	moderationService := services.NewModerationService(
		flaggedRepo, conversationRepo, profileRepo, responseService, hub,
	)
	complianceService := services.NewComplianceService(conversationRepo, flaggedRepo, filterRepo)
	authService := services.NewAuthService(guardianRepo)
	profileService := services.NewProfileService(profileRepo)

	// Set services in controllers
	controllers.SetQuestionService(questionService)
	controllers.SetModerationService(moderationService)
	controllers.SetComplianceService(complianceService)
	controllers.SetAuthService(authService)
	controllers.SetProfileService(profileService)

	// Initialize Gin router
	r := gin.Default()

	// Register routes
	routes.RegisterRoutes(r)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
