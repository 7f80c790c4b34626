package main

import (
	"cybercourse/config"
	"cybercourse/database"
	"cybercourse/models"
	"encoding/json"
	"log"
	"os"
)

// Replaces the course catalog from a JSON file. Run when the lineup
// changes; the server itself never mutates courses.
//
//	go run ./scripts courses.json
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "courses.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to open catalog file: %v", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		log.Fatalf("Failed to parse catalog file: %v", err)
	}

	if len(courses) == 0 {
		log.Fatal("Catalog file is empty")
	}

	db := database.Database.Db

	// Soft-retire the current lineup, then load the new one. Approved
	// purchases keep their snapshots either way.
	if err := db.Model(&models.Course{}).Where("is_deleted = ?", false).
		Update("is_deleted", true).Error; err != nil {
		log.Fatalf("Failed to retire existing catalog: %v", err)
	}

	imported := 0
	for _, course := range courses {
		course.ID = 0
		course.IsDeleted = false
		if err := db.Create(&course).Error; err != nil {
			log.Printf("Skipping course %q: %v", course.Name, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d of %d courses into %s", imported, len(courses), config.AppConfig.DBName)
}
