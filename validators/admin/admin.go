package adminValidator

import (
	adminController "cybercourse/controllers/admin"
	"cybercourse/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminLogin requires both credential fields.
func AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(adminController.AdminLoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Username == "" {
			errors["username"] = "Username is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminLogin", reqData)
		return c.Next()
	}
}

// PurchaseAction validates the purchase id path parameter for
// approve/reject.
func PurchaseAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		purchaseID := strings.TrimSpace(c.Params("id"))
		if purchaseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Purchase ID is required!", nil)
		}

		if _, err := uuid.Parse(purchaseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Purchase ID!", nil)
		}

		c.Locals("purchaseID", purchaseID)
		return c.Next()
	}
}

// PendingList validates optional pagination query parameters.
func PendingList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query("page") == "" && c.Query("limit") == "" {
			return c.Next()
		}

		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPendingList", reqData)
		return c.Next()
	}
}
