package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/saverentacar/saverent-backend/internal/airtable"
	"github.com/saverentacar/saverent-backend/internal/database"
	"github.com/saverentacar/saverent-backend/internal/handlers"
	"github.com/saverentacar/saverent-backend/internal/middleware"
	"github.com/saverentacar/saverent-backend/internal/services"
	"github.com/saverentacar/saverent-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Submission archive (optional Postgres variant)
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to get database instance: %v", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		log.Println("Submission archive not configured, admin listings disabled")
	}

	// Fleet cache (optional)
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Upload storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Record store and mail relay collaborators
	store := airtable.NewClientFromEnv()
	mailer := utils.NewMailerFromEnv()

	// Live submission feed for the admin dashboard
	hub := services.NewHub()
	go hub.Run()

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	config.AllowOrigins = []string{origin}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored uploads when S3 is not configured
	r.Static("/uploads", "./uploads")

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		api.GET("/fleet", handlers.GetFleet(store))
		api.POST("/bookings", handlers.CreateBooking(db, store, hub))
		api.POST("/transfers", handlers.RequestTransfer(db, store, hub))
		api.POST("/contact", handlers.SubmitContact(db, mailer, hub))
		api.GET("/contact", handlers.ContactHealth(mailer))

		api.POST("/admin/login", handlers.AdminLogin())

		// Operator routes
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/bookings", handlers.GetBookings(db))
			admin.GET("/inquiries", handlers.GetInquiries(db))
			admin.POST("/uploads", handlers.UploadImage())
			admin.GET("/ws", handlers.WebSocketHandler(hub))
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
