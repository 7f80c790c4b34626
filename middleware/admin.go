package middleware

import "github.com/gofiber/fiber/v2"

// AdminOnly gates the approval queue behind the ADMIN role claim.
// Runs after JWTMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "ADMIN" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
	}
	return c.Next()
}
