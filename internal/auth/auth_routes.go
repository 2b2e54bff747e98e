package auth

import (
	"go-emprecords/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler, guard *middleware.AccessGuard) {
	loginLimit := middleware.RateLimitByIP(1, 5)

	r.POST("/login", loginLimit, handler.EmployeeLogin)
	r.POST("/admin-login", loginLimit, handler.AdminLogin)
	r.PUT("/admin/password", guard.Require("admin", "update"), handler.ChangeAdminPassword)
	r.GET("/api/me", guard.Authenticate(), handler.Me)
}
