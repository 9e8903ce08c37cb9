package main

import (
	"context"
	"log"
	"time"

	"github.com/collegemetrics/api/config"
	"github.com/collegemetrics/api/database"
	"github.com/collegemetrics/api/services"
	"github.com/collegemetrics/api/services/objectstore"
	applogger "github.com/collegemetrics/api/utils/logger"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// One-shot render of the report catalog, producing the same workbook
// the nightly job writes.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	getEnv, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	if err := applogger.Init(getEnv.GO_ENV); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer applogger.Sync()

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	db := store.GetDB().(*gorm.DB)

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
			log.Printf("Warning: object storage unavailable, export stays local: %v", err)
		}
	}

	exportService := services.NewExportService(db, spacesClient, getEnv.EXPORT_DIR, getEnv.EXPORT_RETENTION_DAYS)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	path, err := exportService.ExportToFile(ctx)
	if err != nil {
		log.Fatalf("❌ Export failed: %v", err)
	}

	log.Printf("✅ Report workbook written to %s", path)
}
