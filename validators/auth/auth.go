package authValidator

import (
	authController "cybercourse/controllers/auth"
	"cybercourse/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Signup validates the registration payload before the handler runs.
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Email":
					errors["email"] = "A valid email is required!"
				case "Username":
					errors["username"] = "Username must be at least 2 characters!"
				case "Phone":
					errors["phone"] = "A valid phone number is required!"
				case "Password":
					errors["password"] = "Password must be at least 6 characters!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login only requires an email; the password field is passed through
// unchecked.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Email == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
