package database

import (
	"fmt"
	"log"
	"time"

	"github.com/collegemetrics/api/config"
	"github.com/collegemetrics/api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: false,
		PrepareStmt:            true, // Prepare statements for better performance
		TranslateError:         true, // Map constraint violations to gorm sentinel errors
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Migrate creates/updates the four relations and recreates the summary
// view on top of them. Shared by Init and the test helpers so there is
// exactly one migration path.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Root entity
		&model.College{},

		// 1:1 extensions
		&model.TuitionInfo{},
		&model.DiversityStats{},
		&model.SalaryPotential{},
	)
	if err != nil {
		return err
	}

	// The view depends on the tables above, always rebuild it last.
	return RecreateSummaryView(db)
}

// Init runs the AutoMigrate to create/update tables and the view
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate for all models...")

	if err := Migrate(s.db); err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in services/handlers
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// GetColleges retrieves all colleges from the database
func (s *GORMStore) GetColleges() ([]model.College, error) {
	var colleges []model.College
	result := s.db.Order("state ASC, name ASC").Find(&colleges)
	return colleges, Translate(result.Error)
}

// AddCollege adds a new college to the database
func (s *GORMStore) AddCollege(college model.College) error {
	result := s.db.Create(&college)
	return Translate(result.Error)
}

// UpdateCollege updates an existing college in the database
func (s *GORMStore) UpdateCollege(college model.College) error {
	result := s.db.Model(&model.College{}).Where("id = ?", college.ID).Updates(college)
	return Translate(result.Error)
}

// DeleteCollege deletes a college by ID; the extension rows go with it.
func (s *GORMStore) DeleteCollege(id int64) error {
	result := s.db.Delete(&model.College{}, id)
	return Translate(result.Error)
}
