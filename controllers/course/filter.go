package controllers

import (
	"cybercourse/models"
	"strings"
)

// FilterCourses derives the visible subset of the catalog. A course
// matches when the category is CategoryAll or equal, and the search term
// is a case-insensitive substring of name, description or instructor.
// An empty term matches everything. Input order is preserved.
func FilterCourses(courses []models.Course, searchTerm, category string) []models.Course {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if category != models.CategoryAll && course.Category != category {
			continue
		}
		if term != "" && !matchesTerm(course, term) {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

func matchesTerm(course models.Course, term string) bool {
	return strings.Contains(strings.ToLower(course.Name), term) ||
		strings.Contains(strings.ToLower(course.Description), term) ||
		strings.Contains(strings.ToLower(course.Instructor), term)
}
