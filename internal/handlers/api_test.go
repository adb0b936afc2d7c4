package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/invoicemaker/internal/config"
	"github.com/example/invoicemaker/internal/database"
	"github.com/example/invoicemaker/internal/handlers"
	"github.com/example/invoicemaker/internal/routes"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	// A burst large enough that ordinary tests never trip the limiter.
	return newRateLimitedApp(t, 100, 100)
}

func newRateLimitedApp(t *testing.T, rps float64, burst int) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTAlgorithm:   "HS256",
		TokenExpires:   30 * time.Minute,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	routes.Register(app, db, cfg)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func signupBody(phone, email string) map[string]any {
	return map[string]any{
		"name":         "Foo",
		"email":        email,
		"phone_number": phone,
		"password":     "password123",
		"store_name":   "Foo Store",
	}
}

func signupAndLogin(t *testing.T, app *fiber.App, phone, email string) string {
	t.Helper()

	status, _ := doJSON(t, app, http.MethodPost, "/signup", "", signupBody(phone, email))
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/login/access-token", "", map[string]any{
		"phone_number": phone,
		"password":     "password123",
	})
	require.Equal(t, http.StatusOK, status)

	token, ok := body["access_token"].(string)
	require.True(t, ok)
	require.Equal(t, "bearer", body["token_type"])
	return token
}

func dataMap(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected object data, got %v", body)
	return data
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	require.True(t, ok, "expected array data, got %v", body)
	return data
}
