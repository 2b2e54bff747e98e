package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go-emprecords/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupStaticRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	publicDir := t.TempDir()
	uploadsDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(publicDir, "login.html"), []byte("<h1>login</h1>"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(publicDir, "app.js"), []byte("console.log(1)"), 0o644))
	assert.NoError(t, os.MkdirAll(filepath.Join(uploadsDir, "employees"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(uploadsDir, "employees", "a.jpg"), []byte("jpeg"), 0o644))

	cfg := &config.Config{
		App:     config.AppConfig{PublicDir: publicDir},
		Storage: config.StorageConfig{Backend: config.StorageLocal, LocalDir: uploadsDir},
	}

	r := gin.New()
	registerStatic(r, cfg)
	return r
}

func TestRegisterStatic(t *testing.T) {
	r := setupStaticRouter(t)

	cases := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"health", http.MethodGet, "/", http.StatusOK, "OK"},
		{"public file", http.MethodGet, "/app.js", http.StatusOK, "console.log(1)"},
		{"unknown path falls back to login", http.MethodGet, "/dashboard", http.StatusOK, "<h1>login</h1>"},
		{"traversal rejected", http.MethodGet, "/../../etc/passwd", http.StatusBadRequest, "invalid URL path"},
		{"uploaded file", http.MethodGet, "/uploads/employees/a.jpg", http.StatusOK, "jpeg"},
		{"unknown api write", http.MethodPost, "/nope", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestRegisterStatic_Metrics(t *testing.T) {
	r := setupStaticRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
