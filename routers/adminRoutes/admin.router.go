package adminRoutes

import (
	controllers "cybercourse/controllers/admin"
	"cybercourse/middleware"
	validators "cybercourse/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Post("/login", validators.AdminLogin(), controllers.AdminLogin)

	adminGroup.Get("/purchases/pending", middleware.JWTMiddleware, middleware.AdminOnly, validators.PendingList(), controllers.ListPendingPurchases)
	adminGroup.Patch("/purchases/:id/approve", middleware.JWTMiddleware, middleware.AdminOnly, validators.PurchaseAction(), controllers.ApprovePurchase)
	adminGroup.Delete("/purchases/:id/reject", middleware.JWTMiddleware, middleware.AdminOnly, validators.PurchaseAction(), controllers.RejectPurchase)
}
