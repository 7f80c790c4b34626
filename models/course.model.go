package models

import "gorm.io/gorm"

// Course rows are seeded from the static catalog at startup and are
// read-only afterwards.
type Course struct {
	gorm.Model
	Name        string `json:"name"`
	Price       uint   `json:"price"` // INR
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Level       string `json:"level"` // Beginner, Intermediate, Advanced, Expert
	Duration    string `json:"duration"`
	Instructor  string `json:"instructor"`
	DriveLink   string `json:"driveLink"`
	IsDeleted   bool   `gorm:"default:false"`
}

// CategoryAll matches every course when used as a filter.
const CategoryAll = "All"
