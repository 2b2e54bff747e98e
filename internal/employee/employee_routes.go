package employee

import (
	"go-emprecords/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler, guard *middleware.AccessGuard) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.GET("/export", guard.Require("employee", "export"), handler.Export)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", guard.Require("employee", "create"), handler.Create)
		employees.PUT("/:id", guard.Require("employee", "update"), handler.Update)
		employees.DELETE("/:id", guard.Require("employee", "delete"), handler.Delete)
	}

	r.GET("/api/employee/:employee_id", handler.GetByEmployeeID)
	r.POST("/api/upload-profile-image/:employee_id",
		guard.Require("employee", "update"),
		handler.UploadProfileImage,
	)
}
