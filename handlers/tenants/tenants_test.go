package tenants

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Booking{}))
	utils.DB = db

	r := gin.New()
	r.GET("/tenants", GetTenants)
	r.GET("/tenants/search", SearchTenants)
	r.GET("/tenants/stats", TenantStats)
	r.GET("/tenants/:id", GetTenant)
	return r
}

func seedTenant(t *testing.T, first, last, email, verificationStatus string) models.User {
	t.Helper()
	tenant := models.User{
		FirstName:          first,
		LastName:           last,
		Email:              email,
		Password:           "irrelevant",
		UserType:           "tenant",
		VerificationStatus: verificationStatus,
	}
	require.NoError(t, utils.DB.Create(&tenant).Error)
	return tenant
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

func TestSearchTenantsRejectsShortQuery(t *testing.T) {
	r := setupTest(t)

	w, body := get(t, r, "/tenants/search?q=a")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestSearchTenantsTwoCharactersAccepted(t *testing.T) {
	r := setupTest(t)
	seedTenant(t, "Jane", "Mensah", "jane@example.com", "verified")
	seedTenant(t, "Kofi", "Asante", "kofi@example.com", "pending")

	w, body := get(t, r, "/tenants/search?q=ja")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])
}

func TestSearchTenantsCaseInsensitive(t *testing.T) {
	r := setupTest(t)
	seedTenant(t, "Jane", "Mensah", "jane@example.com", "verified")

	_, body := get(t, r, "/tenants/search?q=MENSAH")
	assert.Equal(t, float64(1), body["count"])

	_, body = get(t, r, "/tenants/search?q=JANE@EXAMPLE")
	assert.Equal(t, float64(1), body["count"])
}

func TestGetTenantNotFoundVsEmptyCollection(t *testing.T) {
	r := setupTest(t)

	// Empty collection succeeds with zero count.
	w, body := get(t, r, "/tenants")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])

	// Missing single entity is a distinct not-found failure.
	w, body = get(t, r, "/tenants/123")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestTenantStatsVerificationRate(t *testing.T) {
	r := setupTest(t)
	seedTenant(t, "A", "One", "a1@example.com", "verified")
	seedTenant(t, "B", "Two", "b2@example.com", "verified")
	seedTenant(t, "C", "Three", "c3@example.com", "pending")
	seedTenant(t, "D", "Four", "d4@example.com", "unverified")

	w, body := get(t, r, "/tenants/stats")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), body["total"])
	assert.Equal(t, 50.0, body["verification_rate"])
}

func TestGetTenantIncludesBookings(t *testing.T) {
	r := setupTest(t)
	tenant := seedTenant(t, "Jane", "Mensah", "jane@example.com", "verified")
	require.NoError(t, utils.DB.Create(&models.Booking{
		TenantID: tenant.ID, PropertyID: 7, RentStatus: "active", Amount: 900,
	}).Error)

	w, body := get(t, r, "/tenants/1")

	require.Equal(t, http.StatusOK, w.Code)
	bookings := body["bookings"].([]interface{})
	assert.Len(t, bookings, 1)
}
