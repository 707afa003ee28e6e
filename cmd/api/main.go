package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/alexshipulin/Buddy/internal/auth"
	"github.com/alexshipulin/Buddy/internal/chat"
	"github.com/alexshipulin/Buddy/internal/db"
	"github.com/alexshipulin/Buddy/internal/history"
	"github.com/alexshipulin/Buddy/internal/llm"
	"github.com/alexshipulin/Buddy/internal/meal"
	"github.com/alexshipulin/Buddy/internal/middleware"
	"github.com/alexshipulin/Buddy/internal/profile"
	"github.com/alexshipulin/Buddy/internal/scan"
	"github.com/alexshipulin/Buddy/internal/storage"
	"github.com/alexshipulin/Buddy/internal/trial"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	if !llm.HasAPIKey() {
		log.Println("⚠️  GEMINI_API_KEY not set — menu analysis runs in mock mode")
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	docStore := db.NewDocStore(pgDB)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	var archiver scan.ImageArchiver
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archiver = r2Client
	} else {
		log.Println("⚠️  Object storage not configured — scan images stay inline")
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	profileRepo := profile.NewPostgresRepository(docStore)
	trialRepo := trial.NewPostgresRepository(docStore)
	historyRepo := history.NewPostgresRepository(docStore)
	scanRepo := scan.NewPostgresRepository(docStore)
	mealRepo := meal.NewPostgresRepository(docStore)
	chatRepo := chat.NewPostgresRepository(docStore)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	llmClient := llm.NewGeminiClient()

	profileService := profile.NewService(profileRepo)
	trialService := trial.NewService(trialRepo)

	scanService := scan.NewService(
		profileRepo,
		trialService,
		scanRepo,
		historyRepo,
		scan.NewProvider(llmClient),
		archiver,
		os.Getenv("SCAN_TEST_MODE") == "1",
	)

	mealService := meal.NewService(mealRepo, historyRepo, llmClient)
	chatService := chat.NewService(chatRepo, profileRepo, llmClient)

	// ───────────────────────── HANDLERS ─────────────────────────
	profileHandler := profile.NewHandler(profileService)
	trialHandler := trial.NewHandler(trialService)
	scanHandler := scan.NewHandler(scanService)
	mealHandler := meal.NewHandler(mealService, profileRepo)
	chatHandler := chat.NewHandler(chatService)
	historyHandler := history.NewHandler(historyRepo)

	// ───────────────────────── PROFILE ROUTES ─────────────────────────
	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.AuthMiddleware())
	{
		profileGroup.GET("", profileHandler.GetProfile)
		profileGroup.PUT("", profileHandler.SaveProfile)
		profileGroup.GET("/prefs", profileHandler.GetPrefs)
		profileGroup.POST("/prefs/launch", profileHandler.RecordLaunch)
		profileGroup.POST("/prefs/dismiss-nudge", profileHandler.DismissSignInNudge)
		profileGroup.POST("/prefs/save-scans", profileHandler.SetSaveScansPreference)
	}

	// ───────────────────────── TRIAL ROUTES ─────────────────────────
	trialGroup := r.Group("/trial")
	trialGroup.Use(middleware.AuthMiddleware())
	{
		trialGroup.GET("/status", trialHandler.Status)
		trialGroup.POST("/upgrade", trialHandler.Upgrade)
	}

	// ───────────────────────── SCAN ROUTES ─────────────────────────
	scans := r.Group("/scans")
	scans.Use(middleware.AuthMiddleware())
	{
		scans.POST("", scanHandler.Analyze)
		scans.GET("/:id", scanHandler.GetResult)
	}

	// ───────────────────────── MEAL ROUTES ─────────────────────────
	meals := r.Group("/meals")
	meals.Use(middleware.AuthMiddleware())
	{
		meals.POST("", mealHandler.AddMeal)
		meals.POST("/photo", mealHandler.AddMealPhoto)
		meals.GET("/today", mealHandler.TodayMacros)
		meals.GET("/:id", mealHandler.GetMeal)
	}

	// ───────────────────────── HISTORY + CHAT ─────────────────────────
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("history", historyHandler.List)
		protected.GET("chat", chatHandler.List)
		protected.POST("chat", chatHandler.Ask)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
