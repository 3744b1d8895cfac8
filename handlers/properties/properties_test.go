package properties

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}))
	utils.DB = db

	r := gin.New()
	r.GET("/properties", GetProperties)
	r.GET("/properties/stats", PropertyStats)
	r.GET("/properties/:id", GetProperty)
	return r
}

func seedProperty(t *testing.T, title, status string, price float64, createdAt time.Time) models.Property {
	t.Helper()
	property := models.Property{
		Title:      title,
		LandlordID: 1,
		Status:     status,
		Price:      price,
		CreatedAt:  createdAt,
	}
	require.NoError(t, utils.DB.Create(&property).Error)
	return property
}

func get(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetPropertiesEmptyCollection(t *testing.T) {
	r := setupTest(t)

	w, body := get(t, r, "/properties")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
}

func TestGetPropertiesDateRangeInclusive(t *testing.T) {
	r := setupTest(t)

	seedProperty(t, "On start boundary", "available", 1000, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	seedProperty(t, "On end boundary", "available", 1200, time.Date(2026, 8, 15, 16, 30, 0, 0, time.UTC))
	seedProperty(t, "Before range", "available", 900, time.Date(2026, 7, 31, 23, 59, 0, 0, time.UTC))
	seedProperty(t, "After range", "available", 1100, time.Date(2026, 8, 16, 0, 0, 1, 0, time.UTC))

	w, body := get(t, r, "/properties?start_date=2026-08-01&end_date=2026-08-15")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["count"], "records on both boundaries are included")
}

func TestGetPropertiesRejectsMalformedRange(t *testing.T) {
	r := setupTest(t)

	w, body := get(t, r, "/properties?start_date=2026-08-01&end_date=15-08-2026")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestPropertyStatsOccupancy(t *testing.T) {
	r := setupTest(t)

	now := time.Now()
	seedProperty(t, "A", "rented", 1000, now)
	seedProperty(t, "B", "rented", 2000, now)
	seedProperty(t, "C", "available", 1500, now)
	seedProperty(t, "D", "maintenance", 0, now)

	w, body := get(t, r, "/properties/stats")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), body["total"])
	assert.Equal(t, 50.0, body["occupancy_rate"])
	// Zero-priced rows are excluded from the average: (1000+2000+1500)/3.
	assert.Equal(t, 1500.0, body["average_price"])
}

func TestGetPropertyNotFound(t *testing.T) {
	r := setupTest(t)

	w, body := get(t, r, "/properties/55")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestGetPropertyIncrementsViews(t *testing.T) {
	r := setupTest(t)
	property := seedProperty(t, "Viewed", "available", 800, time.Now())

	w, _ := get(t, r, "/properties/1")
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Property
	require.NoError(t, utils.DB.First(&updated, property.ID).Error)
	assert.Equal(t, 1, updated.Views)
}
