package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"nurse-call-backend/internal/config"
	"nurse-call-backend/internal/database"
	"nurse-call-backend/internal/handler"
	"nurse-call-backend/internal/hub"
	"nurse-call-backend/internal/middleware"
	"nurse-call-backend/internal/repository"
	"nurse-call-backend/internal/service"
	"nurse-call-backend/pkg/logger"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize structured logger
	zapLogger, err := logger.NewLogger(cfg.Server.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 4. Initialize database connection
	db := database.Connect(cfg)

	// Ensure an admin account exists for first login
	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "admin123"
	}
	if err := database.SeedDefaultAdmin(db, adminUser, adminPass); err != nil {
		log.Printf("Warning: Failed to seed default admin: %v", err)
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	islandRepo := repository.NewIslandRepo(db)
	bedRepo := repository.NewBedRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	nurseRepo := repository.NewNurseRepo(db)
	callRepo := repository.NewCallRepo(db)
	pushRepo := repository.NewPushSubscriptionRepo(db)

	// 6. Initialize the live subscriber hub and services
	liveHub := hub.New()

	authService := service.NewAuthService(userRepo, auditRepo)
	islandService := service.NewIslandService(islandRepo, auditRepo)
	bedService := service.NewBedService(bedRepo, islandRepo, auditRepo)
	patientService := service.NewPatientService(patientRepo, bedRepo, userRepo, auditRepo)
	nurseService := service.NewNurseService(nurseRepo, userRepo, auditRepo)
	resolverService := service.NewResolverService(nurseRepo)
	pushService := service.NewPushService(pushRepo, nurseRepo, cfg.Push, zapLogger)
	notificationService := service.NewNotificationService(liveHub, pushService, zapLogger)
	callService := service.NewCallService(callRepo, bedRepo, resolverService, notificationService, liveHub, cfg.Call)
	qrCodeService := service.NewQRCodeService(bedRepo, resolverService)
	expiryService := service.NewExpiryService(callRepo, cfg.Call.SweepInterval, zapLogger)

	// 7. Start the call expiry sweep in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go expiryService.Start(ctx)

	// 8. Setup Gin mode and router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	islandHandler := handler.NewIslandHandler(islandService)
	bedHandler := handler.NewBedHandler(bedService, qrCodeService)
	patientHandler := handler.NewPatientHandler(patientService)
	nurseHandler := handler.NewNurseHandler(nurseService)
	callHandler := handler.NewCallHandler(callService)
	pushHandler := handler.NewPushHandler(pushService)
	qrCodeHandler := handler.NewQRCodeHandler(qrCodeService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "nurse-call-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Call routes: creation and streaming are public so the bedside QR
	// page works without credentials
	calls := r.Group("/api/calls")
	{
		calls.POST("", callHandler.CreateCall)
		calls.GET("/stream/:nurseId", callHandler.StreamCalls)

		protected := calls.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin", "nurse"))
		{
			protected.GET("/nurse/:nurseId", callHandler.GetCallsForNurse)
			protected.POST("/:id/ack", callHandler.AcknowledgeCall)
		}
	}

	// Push notification routes
	push := r.Group("/api/push")
	{
		push.GET("/vapidPublicKey", pushHandler.GetVAPIDPublicKey)
		push.POST("/subscribe/:nurseId",
			middleware.AuthMiddleware(), middleware.RequireRoles("admin", "nurse"),
			pushHandler.Subscribe)
	}

	// Public QR lookup for the patient-facing call page
	r.GET("/api/qr/:token", qrCodeHandler.GetQRCodeData)

	// Directory routes (authenticated; mutations are admin only)
	directory := r.Group("/api")
	directory.Use(middleware.AuthMiddleware())
	{
		directory.GET("/islands", islandHandler.GetIslands)
		directory.GET("/islands/:id", islandHandler.GetIsland)
		directory.POST("/islands", middleware.RequireAdmin(), islandHandler.CreateIsland)
		directory.PUT("/islands/:id", middleware.RequireAdmin(), islandHandler.UpdateIsland)
		directory.DELETE("/islands/:id", middleware.RequireAdmin(), islandHandler.DeleteIsland)

		directory.GET("/beds", bedHandler.GetBeds)
		directory.GET("/beds/:id", bedHandler.GetBed)
		directory.GET("/beds/:id/qrcode", middleware.RequireAdmin(), bedHandler.GetBedQRCode)
		directory.POST("/beds", middleware.RequireAdmin(), bedHandler.CreateBed)
		directory.PUT("/beds/:id", middleware.RequireAdmin(), bedHandler.UpdateBed)
		directory.DELETE("/beds/:id", middleware.RequireAdmin(), bedHandler.DeleteBed)

		directory.GET("/patients", patientHandler.GetPatients)
		directory.GET("/patients/:id", patientHandler.GetPatient)
		directory.POST("/patients", middleware.RequireAdmin(), patientHandler.CreatePatient)
		directory.PUT("/patients/:id", middleware.RequireAdmin(), patientHandler.UpdatePatient)
		directory.POST("/patients/:id/bed", middleware.RequireAdmin(), patientHandler.AssignBed)
		directory.DELETE("/patients/:id/bed", middleware.RequireAdmin(), patientHandler.ReleaseBed)

		directory.GET("/nurses", nurseHandler.GetNurses)
		directory.GET("/nurses/:id", nurseHandler.GetNurse)
		directory.POST("/nurses", middleware.RequireAdmin(), nurseHandler.CreateNurse)
		directory.PUT("/nurses/:id", middleware.RequireAdmin(), nurseHandler.UpdateNurse)
		directory.POST("/nurses/:id/islands", middleware.RequireAdmin(), nurseHandler.AssignIslands)
		directory.POST("/nurses/:id/beds", middleware.RequireAdmin(), nurseHandler.AssignBeds)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background sweep context
	cancel()
	log.Println("Server exited")
}
