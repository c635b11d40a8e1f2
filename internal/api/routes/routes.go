package routes

import (
	"log"

	"jobtrack/internal/api/handlers"
	"jobtrack/internal/api/middleware"
	"jobtrack/internal/app"
	"jobtrack/internal/services"
	"jobtrack/internal/storage/postgres"
	"jobtrack/internal/storage/redisstore"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	appRepo := postgres.NewApplicationRepo(app.DBPool)
	dashRepo := postgres.NewDashboardRepo(app.DBPool)
	userRepo := postgres.NewUserRepo(app.DBPool)
	tokenRepo := redisstore.NewTokenRepo(app.RedisClient)

	// --- Services ---
	appService := services.NewApplicationService(appRepo)
	dashService := services.NewDashboardService(dashRepo)
	userService := services.NewUserService(userRepo, tokenRepo,
		app.Config.JWT.Secret, app.Config.JWT.Expiration, app.Config.JWT.RefreshExpiration)

	// --- Handlers ---
	appHandler := handlers.NewApplicationHandler(appService, app.Validator)
	dashHandler := handlers.NewDashboardHandler(dashService)
	userHandler := handlers.NewUserHandler(userService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, appHandler, authMiddleware)
	RegisterDashboardRoutes(apiV1, dashHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
