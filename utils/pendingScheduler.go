package utils

import (
	"cybercourse/config"
	"cybercourse/database"
	"cybercourse/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializePendingScheduler sets up the stale-pending purchase reminder
func InitializePendingScheduler() {
	log.Println("[PENDING-SCHEDULER] Initializing pending purchase scheduler...")

	c := cron.New()

	// Daily digest of purchases stuck in pending
	if _, err := c.AddFunc(config.AppConfig.PendingReminderCron, ProcessStalePendingPurchases); err != nil {
		log.Printf("[PENDING-SCHEDULER] Invalid schedule %q: %v", config.AppConfig.PendingReminderCron, err)
		return
	}

	c.Start()
	log.Printf("[PENDING-SCHEDULER] Pending purchase scheduler started - schedule %q", config.AppConfig.PendingReminderCron)
}

// ProcessStalePendingPurchases mails the admin a digest of purchases that
// have been waiting for approval longer than the configured age.
func ProcessStalePendingPurchases() {
	db := database.Database.Db
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.PendingMaxAgeHours) * time.Hour)

	var stale []models.Purchase
	if err := db.
		Where("payment_status = ? AND created_at < ?", models.PurchasePending, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("[PENDING-SCHEDULER] Error fetching stale pending purchases: %v", err)
		return
	}

	if len(stale) == 0 {
		log.Println("[PENDING-SCHEDULER] No stale pending purchases.")
		return
	}

	log.Printf("[PENDING-SCHEDULER] Found %d stale pending purchases", len(stale))

	lines := make([]string, 0, len(stale))
	for _, p := range stale {
		lines = append(lines, fmt.Sprintf("%s — %s (%s) — ₹%d — requested %s",
			p.CourseName, p.UserName, p.UserEmail, p.Amount, p.CreatedAt.Format("02 Jan 2006 15:04")))
	}

	SendPendingDigestEmail(config.AppConfig.SupportEmail, lines)
}
