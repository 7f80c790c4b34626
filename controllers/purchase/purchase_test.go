package controllers

import (
	"bytes"
	"cybercourse/config"
	adminControllers "cybercourse/controllers/admin"
	"cybercourse/database"
	"cybercourse/middleware"
	"cybercourse/models"
	"cybercourse/utils"
	adminValidators "cybercourse/validators/admin"
	purchaseValidators "cybercourse/validators/purchase"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupPurchaseApp(t *testing.T) *fiber.App {
	config.LoadConfig()
	config.AppConfig.DBName = filepath.Join(t.TempDir(), "test.db")
	database.ConnectDb()
	utils.InitNotifications()

	app := fiber.New()
	app.Post("/purchase/:courseId", middleware.JWTMiddleware, purchaseValidators.RequestPurchase(), RequestPurchase)
	app.Get("/purchase/library", middleware.JWTMiddleware, GetLibrary)
	app.Get("/purchase/payment-info", GetPaymentInfo)

	app.Patch("/admin/purchases/:id/approve", middleware.JWTMiddleware, middleware.AdminOnly,
		adminValidators.PurchaseAction(), adminControllers.ApprovePurchase)
	app.Delete("/admin/purchases/:id/reject", middleware.JWTMiddleware, middleware.AdminOnly,
		adminValidators.PurchaseAction(), adminControllers.RejectPurchase)

	return app
}

func createUser(t *testing.T, email, username, phone string) (models.User, string) {
	user := models.User{Username: username, Email: email, Phone: phone}
	assert.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email, user.Phone)
	assert.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, name string, price uint) models.Course {
	course := models.Course{Name: name, Price: price, Category: "Programming", Instructor: "Meera Joshi",
		DriveLink: "https://drive.google.com/drive/folders/" + name}
	assert.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func adminToken(t *testing.T) string {
	token, err := middleware.GenerateJWT(0, config.AppConfig.AdminUsername, "ADMIN", "", "")
	assert.NoError(t, err)
	return token
}

func request(t *testing.T, app *fiber.App, method, path, token string) (int, map[string]interface{}) {
	req := httptest.NewRequest(method, path, bytes.NewBuffer(nil))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestRequestPurchaseWithoutSession(t *testing.T) {
	app := setupPurchaseApp(t)
	course := createCourse(t, "Intro to Rust", 999)

	code, _ := request(t, app, http.MethodPost, "/purchase/"+itoa(course.ID), "")
	assert.Equal(t, http.StatusUnauthorized, code)

	// Never silently queued
	var count int64
	database.Database.Db.Model(&models.Purchase{}).Count(&count)
	assert.Zero(t, count)
}

func TestRequestPurchaseCreatesPendingSnapshot(t *testing.T) {
	app := setupPurchaseApp(t)
	user, token := createUser(t, "alice@x.com", "alice", "9876543210")
	course := createCourse(t, "Intro to Rust", 999)

	code, parsed := request(t, app, http.MethodPost, "/purchase/"+itoa(course.ID), token)
	assert.Equal(t, http.StatusCreated, code)

	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, models.PurchasePending, data["payment_status"])
	assert.NotEmpty(t, data["id"])

	var stored models.Purchase
	assert.NoError(t, database.Database.Db.Where("user_id = ?", user.ID).First(&stored).Error)
	assert.Equal(t, course.ID, stored.CourseID)
	assert.Equal(t, "Intro to Rust", stored.CourseName)
	assert.Equal(t, "alice", stored.UserName)
	assert.Equal(t, "alice@x.com", stored.UserEmail)
	assert.Equal(t, "9876543210", stored.UserPhone)
	assert.Equal(t, uint(999), stored.Amount)
	assert.Nil(t, stored.ApprovedAt)
}

func TestRequestPurchaseUnknownCourse(t *testing.T) {
	app := setupPurchaseApp(t)
	_, token := createUser(t, "bob@x.com", "bob", "9876500000")

	code, _ := request(t, app, http.MethodPost, "/purchase/99999", token)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLibraryOnlyShowsApprovedPurchases(t *testing.T) {
	app := setupPurchaseApp(t)
	_, token := createUser(t, "carol@x.com", "carol", "9876511111")
	course := createCourse(t, "Python for Automation", 1499)

	code, _ := request(t, app, http.MethodPost, "/purchase/"+itoa(course.ID), token)
	assert.Equal(t, http.StatusCreated, code)

	// Pending purchases are not in the library
	code, parsed := request(t, app, http.MethodGet, "/purchase/library", token)
	assert.Equal(t, http.StatusOK, code)
	data := parsed["data"].(map[string]interface{})
	assert.Empty(t, data["courses"])
}

// End to end: sign up, request, approve, read the library.
func TestPurchaseLifecycleScenario(t *testing.T) {
	app := setupPurchaseApp(t)
	user, token := createUser(t, "alice@x.com", "alice", "9876543210")
	course := createCourse(t, "Intro to Rust", 999)

	code, parsed := request(t, app, http.MethodPost, "/purchase/"+itoa(course.ID), token)
	assert.Equal(t, http.StatusCreated, code)
	purchaseID := parsed["data"].(map[string]interface{})["id"].(string)

	code, _ = request(t, app, http.MethodPatch, "/admin/purchases/"+purchaseID+"/approve", adminToken(t))
	assert.Equal(t, http.StatusOK, code)

	code, parsed = request(t, app, http.MethodGet, "/purchase/library", token)
	assert.Equal(t, http.StatusOK, code)

	data := parsed["data"].(map[string]interface{})
	items := data["courses"].([]interface{})
	assert.Len(t, items, 1)

	item := items[0].(map[string]interface{})
	assert.Equal(t, purchaseID, item["id"])
	assert.Equal(t, models.PurchaseApproved, item["payment_status"])
	assert.Equal(t, float64(user.ID), item["user_id"])
	assert.NotEmpty(t, item["approved_at"])
	assert.Equal(t, course.DriveLink, item["driveLink"])
}

// A course pulled from the catalog degrades the library entry, it does
// not break it.
func TestLibraryToleratesMissingCourse(t *testing.T) {
	app := setupPurchaseApp(t)
	_, token := createUser(t, "dave@x.com", "dave", "9876522222")
	course := createCourse(t, "Smart Contract Security", 3499)

	code, parsed := request(t, app, http.MethodPost, "/purchase/"+itoa(course.ID), token)
	assert.Equal(t, http.StatusCreated, code)
	purchaseID := parsed["data"].(map[string]interface{})["id"].(string)

	code, _ = request(t, app, http.MethodPatch, "/admin/purchases/"+purchaseID+"/approve", adminToken(t))
	assert.Equal(t, http.StatusOK, code)

	// Hard-remove the catalog row
	assert.NoError(t, database.Database.Db.Unscoped().Delete(&models.Course{}, course.ID).Error)

	code, parsed = request(t, app, http.MethodGet, "/purchase/library", token)
	assert.Equal(t, http.StatusOK, code)

	items := parsed["data"].(map[string]interface{})["courses"].([]interface{})
	assert.Len(t, items, 1)

	item := items[0].(map[string]interface{})
	assert.Equal(t, "Smart Contract Security", item["course_name"])
	assert.Empty(t, item["driveLink"])
}

func TestPaymentInfoIsPublic(t *testing.T) {
	app := setupPurchaseApp(t)

	code, parsed := request(t, app, http.MethodGet, "/purchase/payment-info", "")
	assert.Equal(t, http.StatusOK, code)

	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, config.AppConfig.UpiID, data["upi_id"])
	assert.NotEmpty(t, data["instructions"])
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
