package database

import (
	"cybercourse/config"
	"cybercourse/models"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the local SQLite store. Every state change is written
// through immediately, so a restart always resumes from the last mutation.
func ConnectDb() {
	db, err := gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", config.AppConfig.DBName, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}

	// A fresh or wiped file ends up here as empty tables, never an error.
	SeedCatalog(db)
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Purchase{},
		&models.LoginTracking{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
