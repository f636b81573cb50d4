package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", RegisterHandler(db))
	r.POST("/auth/login", LoginHandler(db))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("creates a customer by default", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)

		w := postJSON(t, r, "/auth/register",
			`{"name": "Asha", "email": "asha@example.com", "password": "correct-horse"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Token == "" {
			t.Error("token is empty")
		}
		if resp.User.Role != models.RoleCustomer {
			t.Errorf("role = %s, want customer", resp.User.Role)
		}

		var saved models.User
		if err := db.First(&saved, "email = ?", "asha@example.com").Error; err != nil {
			t.Fatalf("load user: %v", err)
		}
		if saved.PasswordHash == "correct-horse" {
			t.Error("password stored in plain text")
		}
	})

	t.Run("creates an artisan on request", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)

		w := postJSON(t, r, "/auth/register",
			`{"name": "Bo", "email": "bo@example.com", "password": "kiln-and-wheel", "role": "artisan"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects privileged roles", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)

		for _, role := range []string{"admin", "delivery"} {
			w := postJSON(t, r, "/auth/register",
				`{"name": "Eve", "email": "eve@example.com", "password": "sneaky-sneak", "role": "`+role+`"}`)
			if w.Code != http.StatusBadRequest {
				t.Errorf("role %s: status = %d, want 400", role, w.Code)
			}
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)

		body := `{"name": "Asha", "email": "asha@example.com", "password": "correct-horse"}`
		if w := postJSON(t, r, "/auth/register", body); w.Code != http.StatusCreated {
			t.Fatalf("first register: status = %d", w.Code)
		}
		if w := postJSON(t, r, "/auth/register", body); w.Code != http.StatusConflict {
			t.Errorf("second register: status = %d, want 409", w.Code)
		}
	})

	t.Run("rejects a short password", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)

		w := postJSON(t, r, "/auth/register",
			`{"name": "Asha", "email": "asha@example.com", "password": "short"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestLoginHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	register := func(t *testing.T, r *gin.Engine) {
		t.Helper()
		w := postJSON(t, r, "/auth/register",
			`{"name": "Asha", "email": "asha@example.com", "password": "correct-horse"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("register: status = %d", w.Code)
		}
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)
		register(t, r)

		w := postJSON(t, r, "/auth/login",
			`{"email": "asha@example.com", "password": "correct-horse"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Token == "" {
			t.Error("token is empty")
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)
		register(t, r)

		w := postJSON(t, r, "/auth/login",
			`{"email": "asha@example.com", "password": "wrong-horse"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)

		w := postJSON(t, r, "/auth/login",
			`{"email": "ghost@example.com", "password": "correct-horse"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("rejects a retired account", func(t *testing.T) {
		db := openTestDB(t)
		r := testRouter(db)
		register(t, r)

		if err := db.Model(&models.User{}).
			Where("email = ?", "asha@example.com").
			Update("lifecycle_state", models.StateRetired).Error; err != nil {
			t.Fatalf("retire user: %v", err)
		}

		w := postJSON(t, r, "/auth/login",
			`{"email": "asha@example.com", "password": "correct-horse"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}
