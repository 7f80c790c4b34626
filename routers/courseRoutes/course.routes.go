package courseRoutes

import (
	controllers "cybercourse/controllers/course"
	validators "cybercourse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog routes. Browsing needs no
// session; only purchasing does.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/categories", controllers.GetCategories)
	courseGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)
}
