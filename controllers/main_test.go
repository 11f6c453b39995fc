package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"crmpro-backend/config"
	"crmpro-backend/models"
	"crmpro-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupRouter wires the real router onto a fresh sqlite database with
// foreign keys enabled, so unique-index and cascade behavior is exercised
// for real.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "crm.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Interaction{},
		&models.Order{},
		&models.Note{},
	))

	config.DB = db
	return routes.SetupRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createClient(t *testing.T, r *gin.Engine, name, email, phone string) models.Client {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/clients", gin.H{
		"name":  name,
		"email": email,
		"phone": phone,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var client models.Client
	decodeBody(t, w, &client)
	require.NotZero(t, client.ID)
	return client
}
