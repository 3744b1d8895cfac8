package staff

import (
	"bytes"
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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Inspection{}, &models.Repair{}))
	utils.DB = db

	r := gin.New()
	r.GET("/dashboard/inspection-team", InspectionTeamWorkload)
	r.GET("/staff/account-managers/workload", AccountManagerWorkload)
	r.POST("/staff/account-managers/bulk-assign", BulkAssignManagers)
	return r
}

func createUser(t *testing.T, userType, department, email string) models.User {
	t.Helper()
	user := models.User{
		FirstName:  "Test",
		LastName:   "User",
		Email:      email,
		Password:   "irrelevant",
		UserType:   userType,
		Department: department,
	}
	require.NoError(t, utils.DB.Create(&user).Error)
	return user
}

func assignClients(t *testing.T, managerID uint, n int, prefix string) {
	t.Helper()
	for i := 0; i < n; i++ {
		client := models.User{
			FirstName:        "Client",
			LastName:         prefix,
			Email:            prefix + string(rune('a'+i)) + "@example.com",
			Password:         "irrelevant",
			UserType:         "tenant",
			AccountManagerID: &managerID,
		}
		require.NoError(t, utils.DB.Create(&client).Error)
	}
}

func TestBulkAssignManagersPartialFailure(t *testing.T) {
	r := setupTest(t)

	manager := createUser(t, "account_manager", "", "manager@example.com")
	tenant1 := createUser(t, "tenant", "", "t1@example.com")
	tenant2 := createUser(t, "tenant", "", "t2@example.com")
	landlord := createUser(t, "landlord", "", "l1@example.com")

	payload := map[string]interface{}{
		"assignments": []map[string]uint{
			{"user_id": tenant1.ID, "account_manager_id": manager.ID},
			{"user_id": tenant2.ID, "account_manager_id": manager.ID},
			{"user_id": landlord.ID, "account_manager_id": manager.ID},
			{"user_id": 9999, "account_manager_id": manager.ID},  // unknown user
			{"user_id": tenant1.ID, "account_manager_id": 8888}, // unknown manager
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/staff/account-managers/bulk-assign", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "partial failure is still a success envelope")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["successful_assignments"])
	assert.Equal(t, float64(2), body["failed_assignments"])

	failed := body["failed_user_ids"].([]interface{})
	require.Len(t, failed, 2)
	assert.Equal(t, float64(9999), failed[0])
	assert.Equal(t, float64(tenant1.ID), failed[1])

	// The successful assignments actually stuck.
	var assigned int64
	require.NoError(t, utils.DB.Model(&models.User{}).Where("account_manager_id = ?", manager.ID).Count(&assigned).Error)
	assert.Equal(t, int64(3), assigned)
}

func TestBulkAssignManagersEmptyPayloadRejected(t *testing.T) {
	r := setupTest(t)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/staff/account-managers/bulk-assign", bytes.NewReader([]byte(`{"assignments": []}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountManagerWorkloadFlags(t *testing.T) {
	r := setupTest(t)

	m1 := createUser(t, "account_manager", "", "m1@example.com")
	m2 := createUser(t, "account_manager", "", "m2@example.com")
	m3 := createUser(t, "account_manager", "", "m3@example.com")
	m4 := createUser(t, "account_manager", "", "m4@example.com")

	assignClients(t, m2.ID, 5, "m2")
	assignClients(t, m3.ID, 12, "m3")
	assignClients(t, m4.ID, 20, "m4")
	// m1 keeps zero clients.

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/staff/account-managers/workload", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 9.25, body["cohort_average"])
	assert.Equal(t, true, body["rebalance_needed"])

	data := body["data"].([]interface{})
	require.Len(t, data, 4)

	// Ascending by assigned clients.
	first := data[0].(map[string]interface{})
	last := data[3].(map[string]interface{})
	assert.Equal(t, float64(m1.ID), first["manager_id"])
	assert.Equal(t, "underutilized", first["flag"])
	assert.Equal(t, float64(m4.ID), last["manager_id"])
	assert.Equal(t, "overloaded", last["flag"])
	assert.Equal(t, "overloaded", last["load_level"])

	second := data[1].(map[string]interface{})
	assert.Equal(t, float64(m2.ID), second["manager_id"])
	assert.Equal(t, "balanced", second["flag"])
}

func TestInspectionTeamWorkloadSortsLeastLoadedFirst(t *testing.T) {
	r := setupTest(t)

	busy := createUser(t, "staff", "inspection", "busy@example.com")
	idle := createUser(t, "staff", "inspection", "idle@example.com")
	other := createUser(t, "staff", "maintenance", "other@example.com")

	for i := 0; i < 6; i++ {
		require.NoError(t, utils.DB.Create(&models.Inspection{
			TenantID: 1, PropertyID: 1, InspectorID: &busy.ID, Status: "scheduled",
		}).Error)
	}
	// Completed work does not count as open load.
	require.NoError(t, utils.DB.Create(&models.Inspection{
		TenantID: 1, PropertyID: 1, InspectorID: &busy.ID, Status: "completed",
	}).Error)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/dashboard/inspection-team", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "inspection", body["department"])
	assert.Equal(t, float64(2), body["count"], "maintenance staff are not in the inspection pool")
	assert.Equal(t, float64(6), body["total_open"])
	assert.Equal(t, 3.0, body["average_open"])

	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(idle.ID), first["staff_id"])
	assert.Equal(t, "available", first["load_level"])

	second := data[1].(map[string]interface{})
	assert.Equal(t, float64(busy.ID), second["staff_id"])
	assert.Equal(t, "moderate", second["load_level"])

	_ = other
}
