package adminController

import (
	"bytes"
	"cybercourse/config"
	"cybercourse/database"
	"cybercourse/middleware"
	"cybercourse/models"
	"cybercourse/utils"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// adminLoginValidator mirrors the route validator without importing the
// validators package (which imports this one).
func adminLoginValidator(c *fiber.Ctx) error {
	reqData := new(AdminLoginRequest)
	if err := c.BodyParser(reqData); err != nil || reqData.Username == "" || reqData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false})
	}
	c.Locals("validatedAdminLogin", reqData)
	return c.Next()
}

func purchaseActionValidator(c *fiber.Ctx) error {
	purchaseID := c.Params("id")
	if _, err := uuid.Parse(purchaseID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false})
	}
	c.Locals("purchaseID", purchaseID)
	return c.Next()
}

func setupAdminApp(t *testing.T) *fiber.App {
	config.LoadConfig()
	config.AppConfig.DBName = filepath.Join(t.TempDir(), "test.db")
	config.AppConfig.AdminUsername = "gatekeeper"
	config.AppConfig.AdminPassword = "open-sesame"
	database.ConnectDb()
	utils.InitNotifications()

	app := fiber.New()
	app.Post("/admin/login", adminLoginValidator, AdminLogin)
	app.Get("/admin/purchases/pending", middleware.JWTMiddleware, middleware.AdminOnly, ListPendingPurchases)
	app.Patch("/admin/purchases/:id/approve", middleware.JWTMiddleware, middleware.AdminOnly, purchaseActionValidator, ApprovePurchase)
	app.Delete("/admin/purchases/:id/reject", middleware.JWTMiddleware, middleware.AdminOnly, purchaseActionValidator, RejectPurchase)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, map[string]interface{}) {
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
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

func loginAsAdmin(t *testing.T, app *fiber.App) string {
	code, parsed := doRequest(t, app, http.MethodPost, "/admin/login", "",
		AdminLoginRequest{Username: "gatekeeper", Password: "open-sesame"})
	assert.Equal(t, http.StatusOK, code)
	return parsed["data"].(map[string]interface{})["token"].(string)
}

func seedPending(t *testing.T, name string) models.Purchase {
	purchase := models.Purchase{
		UserID:        1,
		CourseID:      1,
		CourseName:    name,
		UserName:      "alice",
		UserEmail:     "alice@x.com",
		UserPhone:     "9876543210",
		Amount:        999,
		PaymentStatus: models.PurchasePending,
	}
	assert.NoError(t, database.Database.Db.Create(&purchase).Error)
	return purchase
}

func TestAdminLoginExactMatchOnly(t *testing.T) {
	app := setupAdminApp(t)

	for _, attempt := range []AdminLoginRequest{
		{Username: "gatekeeper", Password: "wrong"},
		{Username: "Gatekeeper", Password: "open-sesame"}, // case matters
		{Username: "someone", Password: "else"},
	} {
		code, _ := doRequest(t, app, http.MethodPost, "/admin/login", "", attempt)
		assert.Equal(t, http.StatusUnauthorized, code)
	}

	token := loginAsAdmin(t, app)
	assert.NotEmpty(t, token)
}

func TestPendingQueueRequiresAdminRole(t *testing.T) {
	app := setupAdminApp(t)

	// A regular user token does not open the gate
	userToken, err := middleware.GenerateJWT(7, "alice", "USER", "alice@x.com", "")
	assert.NoError(t, err)

	code, _ := doRequest(t, app, http.MethodGet, "/admin/purchases/pending", userToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodGet, "/admin/purchases/pending", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestPendingQueueInsertionOrder(t *testing.T) {
	app := setupAdminApp(t)
	first := seedPending(t, "First Course")
	second := seedPending(t, "Second Course")

	code, parsed := doRequest(t, app, http.MethodGet, "/admin/purchases/pending", loginAsAdmin(t, app), nil)
	assert.Equal(t, http.StatusOK, code)

	data := parsed["data"].(map[string]interface{})
	purchases := data["purchases"].([]interface{})
	assert.Len(t, purchases, 2)
	assert.Equal(t, first.ID, purchases[0].(map[string]interface{})["id"])
	assert.Equal(t, second.ID, purchases[1].(map[string]interface{})["id"])
}

func TestApprovePurchase(t *testing.T) {
	app := setupAdminApp(t)
	purchase := seedPending(t, "Intro to Rust")
	token := loginAsAdmin(t, app)

	code, parsed := doRequest(t, app, http.MethodPatch, "/admin/purchases/"+purchase.ID+"/approve", token, nil)
	assert.Equal(t, http.StatusOK, code)

	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, models.PurchaseApproved, data["payment_status"])
	assert.NotEmpty(t, data["approved_at"])

	// Approved and stamped in the store
	var stored models.Purchase
	assert.NoError(t, database.Database.Db.Where("id = ?", purchase.ID).First(&stored).Error)
	assert.Equal(t, models.PurchaseApproved, stored.PaymentStatus)
	assert.NotNil(t, stored.ApprovedAt)

	// Gone from the queue
	code, parsed = doRequest(t, app, http.MethodGet, "/admin/purchases/pending", token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, parsed["data"].(map[string]interface{})["purchases"])
}

func TestApproveUnknownPurchase(t *testing.T) {
	app := setupAdminApp(t)

	code, _ := doRequest(t, app, http.MethodPatch, "/admin/purchases/"+uuid.NewString()+"/approve", loginAsAdmin(t, app), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRejectPurchaseRemovesRecord(t *testing.T) {
	app := setupAdminApp(t)
	purchase := seedPending(t, "Intro to Rust")
	token := loginAsAdmin(t, app)

	code, _ := doRequest(t, app, http.MethodDelete, "/admin/purchases/"+purchase.ID+"/reject", token, nil)
	assert.Equal(t, http.StatusOK, code)

	// Erased outright, not archived
	var count int64
	database.Database.Db.Model(&models.Purchase{}).Where("id = ?", purchase.ID).Count(&count)
	assert.Zero(t, count)

	// Rejecting it again reports the miss
	code, _ = doRequest(t, app, http.MethodDelete, "/admin/purchases/"+purchase.ID+"/reject", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
