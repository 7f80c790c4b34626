package controllers

import (
	"cybercourse/config"
	"cybercourse/database"
	"cybercourse/middleware"
	"cybercourse/models"
	"cybercourse/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// RequestPurchase records a user's intent to buy a course. The purchase
// starts pending; payment itself happens out of band over UPI and an
// admin confirms it manually. Nothing is charged here.
func RequestPurchase(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please sign in to purchase courses!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Snapshot user and course fields; approval emails and the admin queue
	// read these, never the live rows.
	purchase := models.Purchase{
		UserID:        user.ID,
		CourseID:      course.ID,
		CourseName:    course.Name,
		UserName:      user.Username,
		UserEmail:     user.Email,
		UserPhone:     user.Phone,
		Amount:        course.Price,
		PaymentStatus: models.PurchasePending,
	}

	if err := db.Create(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit purchase request!", nil)
	}

	utils.Notify(fmt.Sprintf("Purchase request submitted for %s. Please complete payment and wait for approval.", course.Name))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Purchase request submitted. Complete the payment and wait for approval.", purchase)
}

// GetLibrary lists the caller's approved purchases with course details
// resolved for access. A course that has left the catalog degrades to the
// snapshotted name with empty details; the entry itself stays.
func GetLibrary(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var purchases []models.Purchase
	if err := db.Where("user_id = ? AND payment_status = ?", userID, models.PurchaseApproved).
		Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch library!", nil)
	}

	type libraryItem struct {
		models.Purchase
		Instructor string `json:"instructor"`
		DriveLink  string `json:"driveLink"`
		Duration   string `json:"duration"`
	}

	items := make([]libraryItem, 0, len(purchases))
	for _, p := range purchases {
		item := libraryItem{Purchase: p}
		var course models.Course
		if err := db.Where("id = ?", p.CourseID).First(&course).Error; err == nil {
			item.Instructor = course.Instructor
			item.DriveLink = course.DriveLink
			item.Duration = course.Duration
		}
		items = append(items, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Library fetched successfully!", fiber.Map{
		"courses": items,
		"count":   len(items),
	})
}

// GetPaymentInfo returns the manual UPI payment details shown after a
// purchase request.
func GetPaymentInfo(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment info fetched successfully!", fiber.Map{
		"upi_id": config.AppConfig.UpiID,
		"instructions": []string{
			fmt.Sprintf("Scan the QR code or use UPI ID: %s", config.AppConfig.UpiID),
			"Complete the payment for your selected course",
			"Wait for admin approval (1-2 hours)",
			"Access your course from the library",
		},
		"support_email": config.AppConfig.SupportEmail,
	})
}
