package controllers

import (
	"cybercourse/database"
	"cybercourse/middleware"
	"cybercourse/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog, optionally narrowed by ?search= and
// ?category=. The catalog is small and static, so filtering happens in
// memory on every request.
func GetAllCourses(c *fiber.Ctx) error {
	searchTerm := c.Query("search")
	category := c.Query("category", models.CategoryAll)
	if category == "" {
		category = models.CategoryAll
	}

	var courses []models.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	filtered := FilterCourses(courses, searchTerm, category)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": filtered,
		"showing": len(filtered),
		"total":   len(courses),
	})
}

// GetCategories lists the category labels, "All" first.
func GetCategories(c *fiber.Ctx) error {
	var categories []string
	if err := database.Database.Db.Model(&models.Course{}).
		Where("is_deleted = ?", false).
		Distinct().Order("category asc").
		Pluck("category", &categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!",
		append([]string{models.CategoryAll}, categories...))
}

// GetCourseDetails returns a single catalog entry.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}
