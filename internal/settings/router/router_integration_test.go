package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/store/csvstore"
)

func TestIntegration_Settings(t *testing.T) {
	logger := zap.NewNop().Sugar()
	dir := t.TempDir()
	store := csvstore.New(csvstore.Config{DataDir: dir}, logger)
	require.NoError(t, store.Initialize(context.Background()))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, store, logger)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/settings", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"theme":"dark","data_privacy":false}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/settings", bytes.NewBufferString(`{"data_privacy":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"theme":"dark","data_privacy":true}`, w.Body.String())

	data, err := os.ReadFile(filepath.Join(dir, "settings.csv"))
	require.NoError(t, err)
	assert.Equal(t, "setting_name,value\ntheme,dark\ndata_privacy,True\n", string(data))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/settings", bytes.NewBufferString(`{"data_privacy":"often"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_SETTING")
}

func TestIntegration_CorruptSettingsFile(t *testing.T) {
	logger := zap.NewNop().Sugar()
	dir := t.TempDir()
	store := csvstore.New(csvstore.Config{DataDir: dir}, logger)
	require.NoError(t, store.Initialize(context.Background()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.csv"),
		[]byte("setting_name,value\ntheme,dark\ndata_privacy,sometimes\n"), 0o644))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, store, logger)

	for _, tt := range []struct {
		method string
		body   string
	}{
		{method: http.MethodGet},
		{method: http.MethodPost, body: `{"theme":"light"}`},
	} {
		t.Run(tt.method, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, "/settings", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Body.String(), "SETTINGS_CORRUPT")
			assert.NotContains(t, w.Body.String(), "sometimes")
			assert.NotContains(t, w.Body.String(), "line")
		})
	}

	data, err := os.ReadFile(filepath.Join(dir, "settings.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_privacy,sometimes", "a failed update leaves the table alone")
}
