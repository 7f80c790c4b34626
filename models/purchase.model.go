package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PurchasePending  = "pending"
	PurchaseApproved = "approved"
)

// Purchase is a user's intent to buy a course. It is created pending,
// moves to approved when an admin confirms the manual payment, or is
// deleted outright on rejection. User and course fields are snapshotted
// at creation time and never re-fetched.
type Purchase struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	CourseName string `json:"course_name"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserPhone  string `json:"user_phone"`
	Amount     uint   `json:"amount"`
	// PurchasePending or PurchaseApproved; rejected purchases are removed,
	// not kept with a terminal status.
	PaymentStatus string     `json:"payment_status" gorm:"index;default:'pending'"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"-"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
