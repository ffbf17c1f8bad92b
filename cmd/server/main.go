// @title Care Log API
// @version 1.0
// @description Backend API for the home-visit care log
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"carelog-be/config"
	"carelog-be/internal/database"
	"carelog-be/internal/handlers"
	"carelog-be/internal/middleware"
	"carelog-be/internal/repository"
	"carelog-be/internal/services"

	"github.com/gin-gonic/gin"

	_ "carelog-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(mongodb.Database)
	clientRepo := repository.NewClientRepository(mongodb.Database)
	staffRepo := repository.NewStaffRepository(mongodb.Database)
	typeRepo := repository.NewActivityTypeRepository(mongodb.Database)
	recordRepo := repository.NewRecordRepository(mongodb.Database)

	// Initialize services
	masterSync := services.NewMasterSyncService(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, accountRepo)
	clientHandler := handlers.NewClientHandler(clientRepo, recordRepo, masterSync)
	recordHandler := handlers.NewRecordHandler(recordRepo)
	calendarHandler := handlers.NewCalendarHandler(recordRepo)
	dashboardHandler := handlers.NewDashboardHandler(clientRepo, recordRepo)
	settingsHandler := handlers.NewSettingsHandler(staffRepo, typeRepo)

	// Initialize Gin
	r := gin.Default()

	// Apply global middleware
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Maintenance(cfg))

	// Public routes
	public := r.Group("/api")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":   "ok",
				"message":  "Care Log API is running",
				"database": "MongoDB connected",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleAuth)
			auth.POST("/refresh", authHandler.RefreshToken)
		}
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		// Auth protected routes
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.GetMe)

		// Client routes
		protected.GET("/clients", clientHandler.ListClients)
		protected.POST("/clients", clientHandler.CreateClient)
		protected.GET("/clients/search", clientHandler.SearchClients)
		protected.POST("/clients/sync", clientHandler.SyncClients)
		protected.GET("/clients/:id", clientHandler.GetClientDetail)
		protected.PATCH("/clients/:id/active", clientHandler.SetClientActive)

		// Record routes
		protected.POST("/records", recordHandler.CreateRecord)
		protected.GET("/records/:id", recordHandler.GetRecord)
		protected.PUT("/records/:id", recordHandler.UpdateRecord)
		protected.DELETE("/records/:id", recordHandler.DeleteRecord)
		protected.POST("/records/:id/complete", recordHandler.CompleteTask)
		protected.POST("/records/:id/assign", recordHandler.AssignTask)

		// Calendar routes
		protected.GET("/calendar", calendarHandler.GetCalendar)
		protected.GET("/calendar/summary", calendarHandler.GetCalendarSummary)

		// Dashboard routes
		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.GET("/dashboard/analytics", dashboardHandler.GetAnalytics)

		// Settings routes
		protected.GET("/settings/staff", settingsHandler.ListStaff)
		protected.POST("/settings/staff", settingsHandler.CreateStaff)
		protected.PATCH("/settings/staff/:id/active", settingsHandler.SetStaffActive)
		protected.GET("/settings/activity-types", settingsHandler.ListActivityTypes)
		protected.POST("/settings/activity-types", settingsHandler.CreateActivityType)
		protected.PATCH("/settings/activity-types/:id/active", settingsHandler.SetActivityTypeActive)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Connected to MongoDB: %s", cfg.MongoDBDatabase)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
