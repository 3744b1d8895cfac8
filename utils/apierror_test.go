package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func failWith(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Fail(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFailValidation(t *testing.T) {
	w, body := failWith(t, Validation("name is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "name is required", body["message"])
}

func TestFailValidationFieldDetail(t *testing.T) {
	w, body := failWith(t, ValidationFields("invalid input", map[string]string{"email": "must be a valid email"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "must be a valid email", fields["email"])
}

func TestFailNotFound(t *testing.T) {
	w, body := failWith(t, NotFound("tenant not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestFailStore(t *testing.T) {
	w, body := failWith(t, Store(errors.New("connection refused"), "Failed to fetch tenants"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The underlying error never leaks past the message string.
	assert.Equal(t, "Failed to fetch tenants", body["message"])
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestFailUntypedErrorBecomesStoreFailure(t *testing.T) {
	w, body := failWith(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An unexpected error occurred", body["message"])
}

func TestWrapLookup(t *testing.T) {
	notFound := WrapLookup(gorm.ErrRecordNotFound, "tenant not found", "failed to fetch tenant")
	assert.Equal(t, KindNotFound, notFound.Kind)
	assert.Equal(t, "tenant not found", notFound.Message)

	storeErr := WrapLookup(errors.New("bad connection"), "tenant not found", "failed to fetch tenant")
	assert.Equal(t, KindStore, storeErr.Kind)
	assert.Equal(t, "failed to fetch tenant", storeErr.Message)
}
