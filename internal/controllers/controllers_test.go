package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"driver_hire/internal/config"
	"driver_hire/internal/models"
	"driver_hire/internal/routes"
)

// newTestRouter wires the full router against a fresh in-memory store.
// The DSN is keyed by test name so parallel tests never share tables.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.EnsureSchema(db))

	return routes.SetupRouter(db)
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// Response envelopes.

type driverEnvelope struct {
	Driver models.Driver `json:"driver"`
}

type driverListEnvelope struct {
	Data []models.Driver `json:"data"`
}

type organisationEnvelope struct {
	Organisation models.Organisation `json:"organisation"`
}

type organisationListEnvelope struct {
	Data []models.Organisation `json:"data"`
}

// createDriver is a shorthand for seeding a driver over the API.
func createDriver(t *testing.T, r http.Handler, payload map[string]any) models.Driver {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/drivers", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[driverEnvelope](t, w).Driver
}

func createOrganisation(t *testing.T, r http.Handler, payload map[string]any) models.Organisation {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/organisations", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[organisationEnvelope](t, w).Organisation
}
