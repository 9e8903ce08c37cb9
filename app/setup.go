package app

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/collegemetrics/api/api"
	"github.com/collegemetrics/api/config"
	"github.com/collegemetrics/api/database"
	"github.com/collegemetrics/api/router"
	"github.com/collegemetrics/api/services"
	"github.com/collegemetrics/api/services/cron"
	"github.com/collegemetrics/api/services/objectstore"
	applogger "github.com/collegemetrics/api/utils/logger"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Structured application logging
	if err := applogger.Init(getEnv.GO_ENV); err != nil {
		return err
	}
	defer applogger.Sync()

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		print("If not running, run the following command:\n")
		print("  make docker-up   (for Docker setup)\n")
		print("  make db-up       (for local PostgreSQL)\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		print("Error running migrations:\n")
		return err
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			print("Warning: Failed to get database connection for cron jobs\n")
		} else {
			var spacesClient *objectstore.SpacesClient
			if getEnv.SPACES_ACCESS_KEY != "" {
				spacesClient, err = objectstore.NewSpacesClient(objectstore.SpacesConfig{
					AccessKey: getEnv.SPACES_ACCESS_KEY,
					SecretKey: getEnv.SPACES_SECRET_KEY,
					Bucket:    getEnv.SPACES_BUCKET,
					Region:    getEnv.SPACES_REGION,
					Endpoint:  getEnv.SPACES_ENDPOINT,
					CDNURL:    getEnv.SPACES_CDN_URL,
				})
				if err != nil {
					print("Warning: Failed to init object storage, exports stay local\n")
				}
			}

			exportService := services.NewExportService(db, spacesClient, getEnv.EXPORT_DIR, getEnv.EXPORT_RETENTION_DAYS)
			cronManager = cron.NewCronManager(exportService)
			if err := cronManager.Start(); err != nil {
				print("Warning: Failed to start cron jobs\n")
				print("Error: ", err.Error(), "\n")
				// Don't fail the app, just log the warning
			}
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	// HTTP access logs
	app.Use(logger.New())

	app.Use(recover.New())

	// Setup Routes
	router.SetupRoutes(app, store)

	// Get the PORT & Start the Server
	return server.Run()

}
