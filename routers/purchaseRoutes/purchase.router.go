package purchaseRoutes

import (
	notificationControllers "cybercourse/controllers/notification"
	controllers "cybercourse/controllers/purchase"
	"cybercourse/middleware"
	validators "cybercourse/validators/purchase"

	"github.com/gofiber/fiber/v2"
)

func SetupPurchaseRoutes(app *fiber.App) {
	purchaseGroup := app.Group("/purchase")

	purchaseGroup.Post("/:courseId", middleware.JWTMiddleware, validators.RequestPurchase(), controllers.RequestPurchase)
	purchaseGroup.Get("/library", middleware.JWTMiddleware, controllers.GetLibrary)
	purchaseGroup.Get("/payment-info", controllers.GetPaymentInfo)

	app.Get("/notification", notificationControllers.GetNotification)
}
