package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostlink/internal/config"
	"lostlink/internal/database"
	"lostlink/internal/identity"
	"lostlink/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubVerifier resolves every token to a fixed subject, or fails with err.
type stubVerifier struct {
	subject string
	err     error
}

func (v stubVerifier) Verify(_ context.Context, _ string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	return v.subject, nil
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestApp wires a server against in-memory sqlite with the given verifier
// and no Redis (rate limiting is off outside production anyway).
func newTestApp(t *testing.T, v identity.Verifier) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := setupHandlerTestDB(t)
	cfg := &config.Config{Port: "0", Env: "test", IdentitySecret: "test-secret"}
	srv := NewServerWithDeps(cfg, db, nil, v)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, nickname, subject string) models.User {
	t.Helper()
	user := models.User{
		IdentitySubject: subject,
		PhoneNumber:     "010-0000-0000",
		RealName:        "Test " + nickname,
		CI:              "ci-" + nickname,
		Nickname:        nickname,
		IsActive:        true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", nickname, err)
	}
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, target, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func decodeInto(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func TestRequireUser_NoToken(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, stubVerifier{subject: "whoever"})

	for _, header := range []string{"", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if body["error"] != "Unauthorized: No token provided." {
			t.Fatalf("unexpected error message: %v", body["error"])
		}
	}
}

func TestRequireUser_InvalidToken(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, stubVerifier{err: identity.ErrInvalidToken})

	resp := doJSON(t, app, http.MethodGet, "/api/users/me", "bad-token", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Forbidden: Invalid token." {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestRequireUser_UnregisteredSubject(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, stubVerifier{subject: "no-such-account"})

	resp := doJSON(t, app, http.MethodGet, "/api/users/me", "valid-token", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "User not found in our database." {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestRequireUser_ResolvesUser(t *testing.T) {
	t.Parallel()
	app, db := newTestApp(t, stubVerifier{subject: "sub-me"})
	seedUser(t, db, "itsme", "sub-me")

	resp := doJSON(t, app, http.MethodGet, "/api/users/me", "valid-token", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["nickname"] != "itsme" {
		t.Fatalf("expected own profile, got %v", body)
	}
	// Sensitive fields never leave the server.
	if _, leaked := body["ci"]; leaked {
		t.Fatal("ci must not be serialized")
	}
}
