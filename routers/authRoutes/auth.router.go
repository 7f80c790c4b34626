package authRoutes

import (
	authControllers "cybercourse/controllers/auth"
	"cybercourse/middleware"
	authValidators "cybercourse/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authControllers.LoginHistoryList)
}
