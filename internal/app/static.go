package app

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go-emprecords/internal/config"
	"go-emprecords/internal/shared/apperror"
	"go-emprecords/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const fallbackPage = "login.html"

func registerStatic(router *gin.Engine, cfg *config.Config) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Storage.Backend == config.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalDir)
	}

	router.NoRoute(publicFallback(cfg.App.PublicDir))
}

// publicFallback serves files from dir and answers every other GET with the
// login page so client-side links keep working.
func publicFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			httpErr := apperror.ToHTTP(apperror.ErrNotFound)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}

		rel := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
		if rel != "" {
			full := filepath.Join(dir, filepath.FromSlash(rel))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				c.File(full)
				return
			}
		}

		c.File(filepath.Join(dir, fallbackPage))
	}
}
