package router

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/collegemetrics/api/database"
	"github.com/collegemetrics/api/handlers"
	auth_handlers "github.com/collegemetrics/api/handlers/auth"
	college_handlers "github.com/collegemetrics/api/handlers/college"
	report_handlers "github.com/collegemetrics/api/handlers/report"
	"github.com/collegemetrics/api/services"
	"github.com/collegemetrics/api/services/objectstore"
	"github.com/collegemetrics/api/utils"
	"github.com/collegemetrics/api/utils/auth"
	"github.com/collegemetrics/api/utils/cache"
	"github.com/collegemetrics/api/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "collegemetrics-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 24 * time.Hour, // Access token expires in 24 hours
		Issuer: jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize Redis cache for brute force protection
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	}

	// Initialize brute force protection
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// The operator account comes from the environment; there is no user table
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@collegemetrics.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	authHandler := auth_handlers.NewAuthHandler(jwtManager, bruteForceProtection, adminEmail, adminPassword)

	// College CRUD and extension handlers
	collegeHandler := college_handlers.NewCollegeHandler(db)

	// Report catalog and export handlers
	reportService := services.NewReportService(db)

	var spacesClient *objectstore.SpacesClient
	if os.Getenv("SPACES_ACCESS_KEY") != "" {
		spacesClient, err = objectstore.NewSpacesClient(objectstore.SpacesConfig{
			AccessKey: os.Getenv("SPACES_ACCESS_KEY"),
			SecretKey: os.Getenv("SPACES_SECRET_KEY"),
			Bucket:    os.Getenv("SPACES_BUCKET"),
			Region:    os.Getenv("SPACES_REGION"),
			Endpoint:  os.Getenv("SPACES_ENDPOINT"),
			CDNURL:    os.Getenv("SPACES_CDN_URL"),
		})
		if err != nil {
			log.Printf("Warning: Failed to init Spaces client: %v. Export uploads will be disabled.", err)
		}
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}

	retentionDays, err := strconv.Atoi(os.Getenv("EXPORT_RETENTION_DAYS"))
	if err != nil || retentionDays <= 0 {
		retentionDays = 30
	}

	exportService := services.NewExportService(db, spacesClient, exportDir, retentionDays)
	reportHandler := report_handlers.NewReportHandler(reportService, exportService)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")

	// Login with brute force protection
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	authGroup.Get("/me", authMiddleware.Required(), authHandler.Me)

	// Colleges routes
	colleges := api.Group("/colleges")
	colleges.Get("/", collegeHandler.ListColleges)                                       // Public: List colleges
	colleges.Get("/:id", collegeHandler.GetCollege)                                      // Public: Get college with extensions
	colleges.Post("/", authMiddleware.RequireAdmin(), collegeHandler.CreateCollege)      // Admin only: Create college
	colleges.Put("/:id", authMiddleware.RequireAdmin(), collegeHandler.UpdateCollege)    // Admin only: Update college
	colleges.Delete("/:id", authMiddleware.RequireAdmin(), collegeHandler.DeleteCollege) // Admin only: Delete college and its extensions

	// Tuition extension (at most one row per college)
	colleges.Get("/:id/tuition", collegeHandler.GetTuition)                                       // Public: Get tuition figures
	colleges.Post("/:id/tuition", authMiddleware.RequireAdmin(), collegeHandler.CreateTuition)    // Admin only: Attach tuition figures
	colleges.Put("/:id/tuition", authMiddleware.RequireAdmin(), collegeHandler.PutTuition)        // Admin only: Create or replace tuition figures
	colleges.Delete("/:id/tuition", authMiddleware.RequireAdmin(), collegeHandler.DeleteTuition)  // Admin only: Detach tuition figures

	// Diversity extension (at most one row per college)
	colleges.Get("/:id/diversity", collegeHandler.GetDiversity)                                      // Public: Get enrollment stats
	colleges.Post("/:id/diversity", authMiddleware.RequireAdmin(), collegeHandler.CreateDiversity)   // Admin only: Attach enrollment stats
	colleges.Put("/:id/diversity", authMiddleware.RequireAdmin(), collegeHandler.PutDiversity)       // Admin only: Create or replace enrollment stats
	colleges.Delete("/:id/diversity", authMiddleware.RequireAdmin(), collegeHandler.DeleteDiversity) // Admin only: Detach enrollment stats

	// Salary extension (at most one row per college)
	colleges.Get("/:id/salary", collegeHandler.GetSalary)                                      // Public: Get salary estimates
	colleges.Post("/:id/salary", authMiddleware.RequireAdmin(), collegeHandler.CreateSalary)   // Admin only: Attach salary estimates
	colleges.Put("/:id/salary", authMiddleware.RequireAdmin(), collegeHandler.PutSalary)       // Admin only: Create or replace salary estimates
	colleges.Delete("/:id/salary", authMiddleware.RequireAdmin(), collegeHandler.DeleteSalary) // Admin only: Detach salary estimates

	// Report catalog (public, read-only)
	reports := api.Group("/reports")
	reports.Get("/tuition", reportHandler.TuitionOverview)
	reports.Get("/diversity", reportHandler.DiversityOverview)
	reports.Get("/salaries", reportHandler.SalaryOverview)
	reports.Get("/top-mid-career-pay", reportHandler.TopMidCareerPay)
	reports.Get("/summary", reportHandler.Summaries)
	reports.Get("/lowest-in-state-tuition", reportHandler.LowestInStateTuition)
	reports.Get("/top-early-career-pay", reportHandler.TopEarlyCareerPay)
	reports.Get("/top-stem-share", reportHandler.TopStemShare)
	reports.Get("/top-two-year-mid-career-pay", reportHandler.TopTwoYearMidCareerPay)
	reports.Get("/avg-tuition-by-state", reportHandler.AvgTuitionByState)
	reports.Get("/avg-early-pay-by-type", reportHandler.AvgEarlyPayByType)
	reports.Get("/top-states-by-avg-minority", reportHandler.TopStatesByAvgMinority)
	reports.Get("/above-avg-early-pay", reportHandler.AboveAvgEarlyPay)
	reports.Get("/above-avg-minority", reportHandler.AboveAvgMinority)
	reports.Get("/top-pay-growth", reportHandler.TopPayGrowth)
	reports.Get("/most-diverse-public", reportHandler.MostDiversePublic)
	reports.Get("/cheapest-private", reportHandler.CheapestPrivate)
	reports.Get("/low-women-enrollment", reportHandler.LowWomenEnrollment)
	reports.Get("/avg-mid-pay-large-colleges", reportHandler.AvgMidPayLargeColleges)
	reports.Get("/tuition-below-type-average", reportHandler.TuitionBelowTypeAverage)

	// Workbook export of the whole catalog
	reports.Get("/export", reportHandler.Export)
}
