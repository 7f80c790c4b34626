package adminController

import (
	"cybercourse/config"
	"cybercourse/database"
	"cybercourse/middleware"
	"cybercourse/models"
	"cybercourse/utils"
	"crypto/subtle"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin checks the submitted pair against the configured static
// credentials and issues an ADMIN token on a match. This is a placeholder
// gate for a manually operated approval queue, not a security boundary;
// the credentials are injected through config so a real verifier can be
// dropped in without touching the purchase handlers.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminLogin").(*AdminLoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(reqData.Username), []byte(config.AppConfig.AdminUsername)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(reqData.Password), []byte(config.AppConfig.AdminPassword)) == 1
	if !usernameOK || !passwordOK {
		utils.Notify("Invalid admin credentials")
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid admin credentials!", nil)
	}

	token, err := middleware.GenerateJWT(0, reqData.Username, "ADMIN", "", "")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	utils.Notify("Admin login successful")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin login successful.", fiber.Map{
		"token": token,
	})
}

// ListPendingPurchases returns the approval queue in the order the
// requests were stored.
func ListPendingPurchases(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Purchase{}).
		Where("payment_status = ?", models.PurchasePending)

	var total int64
	db.Count(&total)

	// Optional pagination; without it the full queue is returned.
	reqData, paginated := c.Locals("validatedPendingList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})

	var purchases []models.Purchase
	if paginated {
		offset := (*reqData.Page - 1) * *reqData.Limit
		if err := db.Offset(offset).Limit(*reqData.Limit).Find(&purchases).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending purchases!", nil)
		}
	} else {
		if err := db.Find(&purchases).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending purchases!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending purchases fetched successfully!", fiber.Map{
		"purchases": purchases,
		"total":     total,
	})
}

// ApprovePurchase confirms a manual payment: the purchase becomes
// approved (terminal), approved_at is stamped, and the buyer is notified
// with the course link. Notification delivery is best effort and never
// rolls the approval back.
func ApprovePurchase(c *fiber.Ctx) error {
	purchaseID := c.Locals("purchaseID").(string)

	db := database.Database.Db

	var purchase models.Purchase
	if err := db.Where("id = ?", purchaseID).First(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	now := time.Now()
	purchase.PaymentStatus = models.PurchaseApproved
	purchase.ApprovedAt = &now

	if err := db.Save(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve purchase!", nil)
	}

	// The drive link comes from the live catalog; a vanished course still
	// gets the approval, just without a link to send.
	var course models.Course
	driveLink := ""
	if err := db.Where("id = ?", purchase.CourseID).First(&course).Error; err == nil {
		driveLink = course.DriveLink
	} else {
		log.Printf("Course %d missing for approved purchase %s", purchase.CourseID, purchase.ID)
	}

	go func(p models.Purchase, link string) {
		utils.SendCourseAccessEmail(p.UserEmail, p.UserName, p.CourseName, link)
		utils.PostWebhook(utils.NotifyPayload{
			Email:      p.UserEmail,
			Subject:    fmt.Sprintf("Course Access Granted - %s", p.CourseName),
			Body:       fmt.Sprintf("Hi %s, your payment has been approved! You now have access to %s.", p.UserName, p.CourseName),
			CourseLink: link,
		})
	}(purchase, driveLink)

	utils.Notify(fmt.Sprintf("Payment approved for %s. Course access granted!", purchase.UserName))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase approved successfully!", purchase)
}

// RejectPurchase removes the request outright; no rejected record is
// kept. An unknown id reports a miss instead of silently succeeding.
func RejectPurchase(c *fiber.Ctx) error {
	purchaseID := c.Locals("purchaseID").(string)

	db := database.Database.Db

	var purchase models.Purchase
	if err := db.Where("id = ?", purchaseID).First(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	if err := db.Delete(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject purchase!", nil)
	}

	utils.Notify("Payment rejected and removed from system")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase rejected and removed.", nil)
}
