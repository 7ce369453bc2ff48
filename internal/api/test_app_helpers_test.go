package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcallejas/pasanaku/internal/auth"
	"github.com/jmcallejas/pasanaku/internal/db"
	"github.com/jmcallejas/pasanaku/internal/models"
	"github.com/jmcallejas/pasanaku/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "pasanaku-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	tokens := auth.NewTokenManager("test-secret-key", 30*time.Minute, 7*24*time.Hour)

	handler := NewHandler(
		zap.NewNop().Sugar(),
		"test",
		tokens,
		services.NewAuthService(repos.Users, tokens),
		services.NewGroupService(repos.Groups),
		services.NewMemberService(repos.Members, repos.Groups),
		services.NewRoundService(repos.Rounds, repos.Groups),
		services.NewPaymentService(repos.Payments, repos.Rounds),
	)

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, email, password, role string) models.User {
	t.Helper()

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		FullName:     "Test User",
		Email:        email,
		Phone:        "+59170000000",
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginTestUser(t *testing.T, app *fiber.App, email, password string) auth.TokenPair {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d", response.StatusCode)
	}

	var pair auth.TokenPair
	decodeBody(t, response.Body, &pair)
	return pair
}

// doJSON performs a request with an optional JSON body and bearer
// token against the test app.
func doJSON(t *testing.T, app *fiber.App, method, path, accessToken string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		request.Header.Set("Authorization", "Bearer "+accessToken)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, body io.Reader, out any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readDetail(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, body, &payload)
	return payload.Detail
}

func createTestGroup(t *testing.T, app *fiber.App, accessToken string) models.Group {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/groups", accessToken, fiber.Map{
		"name":              "Vecinos de Sopocachi",
		"description":       "Monthly neighborhood circle",
		"amount_per_member": 100.0,
		"frequency":         "monthly",
		"max_members":       3,
		"start_date":        time.Now().UTC().Format(time.RFC3339),
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create group: expected status 201, got %d", response.StatusCode)
	}

	var group models.Group
	decodeBody(t, response.Body, &group)
	return group
}
