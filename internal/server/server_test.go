package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealkeep/backend/config"
	"github.com/mealkeep/backend/internal/kvstore"
	"github.com/mealkeep/backend/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:    "127.0.0.1",
		ServerPort:    "0",
		StorageDriver: config.DriverMemory,
	}
}

func TestHealthReportsLoadingUntilStoreIsReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := store.New(kvstore.NewMemoryKV(), false)
	t.Cleanup(s.Close)
	srv := New(testConfig(), s)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, 503, w.Code)

	require.NoError(t, s.Load(context.Background()))

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, 200, w.Code)
}

func TestRoutesAreRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := store.New(kvstore.NewMemoryKV(), true)
	require.NoError(t, s.Load(context.Background()))
	t.Cleanup(s.Close)
	srv := New(testConfig(), s)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/recipes", nil))
	assert.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/meals/upcoming", nil))
	assert.Equal(t, 200, w.Code)
}
