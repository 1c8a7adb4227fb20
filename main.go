package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ecocycle-service/handlers"
	"ecocycle-service/middleware"
	"ecocycle-service/models"
	"ecocycle-service/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		AppName: "ecocycle-service",
	})

	// 🔐 GLOBAL: Only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,OPTIONS,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-User-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.RecyclingItem{},
		&models.User{},
		&models.RecyclingRecord{},
		&models.CommunitySnapshot{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	catalogService := services.NewCatalogService(db)
	recyclingService := services.NewRecyclingService(db, catalogService)
	analyticsService := services.NewAnalyticsService(db)
	recordService := services.NewRecordService(db)

	if err := catalogService.Seed(); err != nil {
		log.Fatal("failed to seed catalog:", err)
	}

	// Default demo account so the app is usable before any auth service is
	// wired in front of it.
	demoUsername := os.Getenv("DEMO_USERNAME")
	if demoUsername == "" {
		demoUsername = "demo_user"
	}
	demoUser, err := recyclingService.EnsureUser(demoUsername)
	if err != nil {
		log.Fatal("failed to ensure demo user:", err)
	}

	analyticsService.StartSnapshotScheduler(1 * time.Hour)

	handlers.SetupRecycleRoutes(app, recyclingService, catalogService)
	handlers.SetupStatsRoutes(app, analyticsService, recordService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Println("✅ Community snapshot scheduler running (every 1h)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)
	log.Printf("✅ Demo user ready: %s (%s)", demoUser.Username, demoUser.ID)

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
