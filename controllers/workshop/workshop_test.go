package workshopControllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "workshop.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Workshop{}, &models.WorkshopRegistration{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createWorkshop(t *testing.T, db *gorm.DB, date time.Time, capacity int, state models.LifecycleState) models.Workshop {
	t.Helper()
	w := models.Workshop{
		ArtisanID:    "artisan-1",
		Title:        "Wheel Throwing Basics",
		Date:         date,
		DurationMins: 90,
		Capacity:     capacity,
		Price:        25,
		State:        state,
	}
	if err := db.Create(&w).Error; err != nil {
		t.Fatalf("create workshop: %v", err)
	}
	return w
}

func TestRegisterForWorkshop(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)

	t.Run("reserves a seat", func(t *testing.T) {
		db := openTestDB(t)
		w := createWorkshop(t, db, future, 5, models.StateActive)

		if err := registerForWorkshop(db, w.ID, "customer-1"); err != nil {
			t.Fatalf("register: %v", err)
		}

		var n int64
		db.Model(&models.WorkshopRegistration{}).Where("workshop_id = ?", w.ID).Count(&n)
		if n != 1 {
			t.Errorf("registrations = %d, want 1", n)
		}
	})

	t.Run("rejects a duplicate registration", func(t *testing.T) {
		db := openTestDB(t)
		w := createWorkshop(t, db, future, 5, models.StateActive)

		if err := registerForWorkshop(db, w.ID, "customer-1"); err != nil {
			t.Fatalf("first register: %v", err)
		}
		if err := registerForWorkshop(db, w.ID, "customer-1"); !errors.Is(err, errAlreadySignedUp) {
			t.Errorf("err = %v, want errAlreadySignedUp", err)
		}
	})

	t.Run("rejects once capacity is reached", func(t *testing.T) {
		db := openTestDB(t)
		w := createWorkshop(t, db, future, 2, models.StateActive)

		for i := 0; i < 2; i++ {
			if err := registerForWorkshop(db, w.ID, fmt.Sprintf("customer-%d", i)); err != nil {
				t.Fatalf("register %d: %v", i, err)
			}
		}
		if err := registerForWorkshop(db, w.ID, "customer-late"); !errors.Is(err, errWorkshopFull) {
			t.Errorf("err = %v, want errWorkshopFull", err)
		}
	})

	t.Run("rejects a workshop whose date has passed", func(t *testing.T) {
		db := openTestDB(t)
		w := createWorkshop(t, db, time.Now().Add(-time.Hour), 5, models.StateActive)

		if err := registerForWorkshop(db, w.ID, "customer-1"); !errors.Is(err, errWorkshopClosed) {
			t.Errorf("err = %v, want errWorkshopClosed", err)
		}
	})

	t.Run("rejects a cancelled workshop", func(t *testing.T) {
		db := openTestDB(t)
		w := createWorkshop(t, db, future, 5, models.StateRetired)

		if err := registerForWorkshop(db, w.ID, "customer-1"); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("err = %v, want ErrRecordNotFound", err)
		}
	})

	t.Run("rejects an unknown workshop", func(t *testing.T) {
		db := openTestDB(t)

		if err := registerForWorkshop(db, 9999, "customer-1"); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("err = %v, want ErrRecordNotFound", err)
		}
	})
}

func putJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateWorkshop(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)

	newRouter := func(db *gorm.DB, artisanID string) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set("user_id", artisanID) })
		r.PUT("/artisan/workshops/:id", UpdateWorkshop(db))
		return r
	}

	t.Run("updates the editable fields", func(t *testing.T) {
		db := openTestDB(t)
		w := createWorkshop(t, db, future, 5, models.StateActive)
		r := newRouter(db, "artisan-1")

		resp := putJSON(r, fmt.Sprintf("/artisan/workshops/%d", w.ID),
			`{"title": "Advanced Wheel Throwing", "capacity": 8}`)
		if resp.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", resp.Code, resp.Body.String())
		}

		var saved models.Workshop
		db.First(&saved, "id = ?", w.ID)
		if saved.Title != "Advanced Wheel Throwing" || saved.Capacity != 8 {
			t.Errorf("workshop = %q cap %d, want Advanced Wheel Throwing cap 8", saved.Title, saved.Capacity)
		}
	})

	t.Run("capacity cannot drop below registrations", func(t *testing.T) {
		db := openTestDB(t)
		w := createWorkshop(t, db, future, 5, models.StateActive)
		for i := 0; i < 3; i++ {
			if err := registerForWorkshop(db, w.ID, fmt.Sprintf("customer-%d", i)); err != nil {
				t.Fatalf("register %d: %v", i, err)
			}
		}
		r := newRouter(db, "artisan-1")

		if resp := putJSON(r, fmt.Sprintf("/artisan/workshops/%d", w.ID), `{"capacity": 2}`); resp.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.Code)
		}
	})

	t.Run("another artisan cannot edit it", func(t *testing.T) {
		db := openTestDB(t)
		w := createWorkshop(t, db, future, 5, models.StateActive)
		r := newRouter(db, "artisan-2")

		if resp := putJSON(r, fmt.Sprintf("/artisan/workshops/%d", w.ID), `{"title": "Hijacked"}`); resp.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.Code)
		}
	})
}
