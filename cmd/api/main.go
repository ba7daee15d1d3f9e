package main

import (
	"log"
	"net/http"

	_ "cmms-backend/api/swagger" // swagger docs
	"cmms-backend/internal/config"
	"cmms-backend/internal/database"
	"cmms-backend/internal/handler"
	"cmms-backend/internal/middleware"
	"cmms-backend/internal/repository"
	"cmms-backend/internal/service"
	"cmms-backend/internal/websocket"
	"cmms-backend/pkg/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

// @title           CMMS Backend API
// @version         1.0
// @description     Maintenance management API: machines, worksheets, spare part inventory, preventive maintenance and reporting.
// @host            localhost:8000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Printf("Connected to %s database successfully.", cfg.DBDriver)

	if err := database.Ping(db); err != nil {
		log.Printf("Database ping failed: %v", err)
	}
	if err := database.SeedDefaultRoles(db); err != nil {
		log.Fatalf("Seeding default roles failed: %v", err)
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenExpireMinutes)
	userService := service.NewUserService(userRepo, authService)
	machineService := service.NewMachineService(db)
	inventoryService := service.NewInventoryService(db, wsHub)
	worksheetService := service.NewWorksheetService(db, wsHub)
	pmService := service.NewPMService(db)
	reportService := service.NewReportService(db)

	guard := middleware.NewAuthGuard(db, cfg.JWTSecret)
	loginLimiter := middleware.RateLimiter(rate.Limit(cfg.LoginRatePerSecond), cfg.LoginRateBurst)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService, loginLimiter)
	userHandler := handler.NewUserHandler(userService, guard)
	machineHandler := handler.NewMachineHandler(machineService, guard)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, guard)
	worksheetHandler := handler.NewWorksheetHandler(worksheetService, guard)
	pmHandler := handler.NewPMHandler(pmService, guard)
	reportHandler := handler.NewReportHandler(reportService, guard)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health checks
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CMMS Backend API", "docs": "/swagger/index.html"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	router.GET("/api/health/", func(c *gin.Context) {
		if err := database.Ping(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, response.Error(http.StatusServiceUnavailable, "database unreachable"))
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"status": "healthy", "database": "up"}))
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, []byte(cfg.JWTSecret))
	})

	// Register API Routes
	api := router.Group("/api/v1")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	machineHandler.RegisterRoutes(api)
	inventoryHandler.RegisterRoutes(api)
	worksheetHandler.RegisterRoutes(api)
	pmHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)

	log.Printf("Server starting on %s", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
