package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"default:''"`
	// Email is looked up first-match on login; duplicates are possible
	// and the earliest registration wins.
	Email     string    `json:"email" gorm:"index;not null"`
	Phone     string    `json:"phone" gorm:"default:''"`
	Role      string    `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	Password  string    `json:"-" gorm:"default:''"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `gorm:"default:false"`
}
