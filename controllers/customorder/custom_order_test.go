package customOrderControllers

import (
	"fmt"
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

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "custom.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.CustomOrder{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, role models.Role, state models.LifecycleState) {
	t.Helper()
	user := models.User{
		ID:           id,
		Name:         "Test " + id,
		Email:        id + "@example.com",
		PasswordHash: "x",
		Role:         role,
		State:        state,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func testRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.POST("/user/custom-orders", CreateCustomOrder(db))
	r.POST("/artisan/custom-orders/:id/accept", AcceptCustomOrder(db))
	r.POST("/artisan/custom-orders/:id/reject", RejectCustomOrder(db))
	r.POST("/artisan/custom-orders/:id/complete", CompleteCustomOrder(db))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedRequest(t *testing.T, db *gorm.DB, status models.CustomOrderStatus) models.CustomOrder {
	t.Helper()
	request := models.CustomOrder{
		UserID:      "customer-1",
		ArtisanID:   "artisan-1",
		Description: "A custom tea set",
		Material:    "porcelain",
		Budget:      200,
		Status:      status,
		State:       models.StateActive,
	}
	if err := db.Create(&request).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return request
}

func TestCreateCustomOrder(t *testing.T) {
	t.Run("files a request against an active artisan", func(t *testing.T) {
		db := openTestDB(t)
		seedUser(t, db, "artisan-1", models.RoleArtisan, models.StateActive)
		r := testRouter(db, "customer-1")

		w := postJSON(r, "/user/custom-orders",
			`{"artisan_id": "artisan-1", "description": "A custom tea set", "budget": 200}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}

		var saved models.CustomOrder
		if err := db.First(&saved, "user_id = ?", "customer-1").Error; err != nil {
			t.Fatalf("load request: %v", err)
		}
		if saved.Status != models.CustomOrderRequested {
			t.Errorf("status = %s, want requested", saved.Status)
		}
	})

	t.Run("rejects a non-artisan target", func(t *testing.T) {
		db := openTestDB(t)
		seedUser(t, db, "customer-2", models.RoleCustomer, models.StateActive)
		r := testRouter(db, "customer-1")

		w := postJSON(r, "/user/custom-orders",
			`{"artisan_id": "customer-2", "description": "A custom tea set"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("rejects a retired artisan", func(t *testing.T) {
		db := openTestDB(t)
		seedUser(t, db, "artisan-1", models.RoleArtisan, models.StateRetired)
		r := testRouter(db, "customer-1")

		w := postJSON(r, "/user/custom-orders",
			`{"artisan_id": "artisan-1", "description": "A custom tea set"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestCustomOrderDecisions(t *testing.T) {
	t.Run("accept stores the quote", func(t *testing.T) {
		db := openTestDB(t)
		request := seedRequest(t, db, models.CustomOrderRequested)
		r := testRouter(db, "artisan-1")

		w := postJSON(r, fmt.Sprintf("/artisan/custom-orders/%d/accept", request.ID), `{"quoted_price": 250}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}

		var saved models.CustomOrder
		db.First(&saved, "id = ?", request.ID)
		if saved.Status != models.CustomOrderAccepted || saved.QuotedPrice != 250 {
			t.Errorf("request = status %s price %v, want accepted 250", saved.Status, saved.QuotedPrice)
		}
	})

	t.Run("reject closes the request", func(t *testing.T) {
		db := openTestDB(t)
		request := seedRequest(t, db, models.CustomOrderRequested)
		r := testRouter(db, "artisan-1")

		if w := postJSON(r, fmt.Sprintf("/artisan/custom-orders/%d/reject", request.ID), ""); w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		var saved models.CustomOrder
		db.First(&saved, "id = ?", request.ID)
		if saved.Status != models.CustomOrderRejected {
			t.Errorf("status = %s, want rejected", saved.Status)
		}
	})

	t.Run("a decided request cannot be decided again", func(t *testing.T) {
		db := openTestDB(t)
		request := seedRequest(t, db, models.CustomOrderAccepted)
		r := testRouter(db, "artisan-1")

		if w := postJSON(r, fmt.Sprintf("/artisan/custom-orders/%d/accept", request.ID), `{"quoted_price": 99}`); w.Code != http.StatusBadRequest {
			t.Errorf("re-accept status = %d, want 400", w.Code)
		}
		if w := postJSON(r, fmt.Sprintf("/artisan/custom-orders/%d/reject", request.ID), ""); w.Code != http.StatusBadRequest {
			t.Errorf("reject after accept status = %d, want 400", w.Code)
		}
	})

	t.Run("complete requires an accepted request", func(t *testing.T) {
		db := openTestDB(t)
		requested := seedRequest(t, db, models.CustomOrderRequested)
		accepted := seedRequest(t, db, models.CustomOrderAccepted)
		r := testRouter(db, "artisan-1")

		if w := postJSON(r, fmt.Sprintf("/artisan/custom-orders/%d/complete", requested.ID), ""); w.Code != http.StatusBadRequest {
			t.Errorf("complete requested: status = %d, want 400", w.Code)
		}
		if w := postJSON(r, fmt.Sprintf("/artisan/custom-orders/%d/complete", accepted.ID), ""); w.Code != http.StatusOK {
			t.Errorf("complete accepted: status = %d, want 200", w.Code)
		}
	})

	t.Run("another artisan cannot touch the request", func(t *testing.T) {
		db := openTestDB(t)
		request := seedRequest(t, db, models.CustomOrderRequested)
		r := testRouter(db, "artisan-2")

		if w := postJSON(r, fmt.Sprintf("/artisan/custom-orders/%d/accept", request.ID), `{"quoted_price": 10}`); w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}
