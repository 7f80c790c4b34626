package controllers

import (
	"cybercourse/middleware"
	"cybercourse/utils"

	"github.com/gofiber/fiber/v2"
)

// GetNotification returns the message currently on display, if it has not
// expired yet.
func GetNotification(c *fiber.Ctx) error {
	message, ok := utils.Notifications.Current()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification fetched successfully!", fiber.Map{
		"message": message,
		"active":  ok,
	})
}
