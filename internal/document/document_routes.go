package document

import (
	"go-emprecords/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler, guard *middleware.AccessGuard) {
	docs := r.Group("/api/documents")
	{
		docs.GET("/:employee_id", handler.Get)
		docs.POST("/:employee_id", guard.Require("document", "update"), handler.Save)
		docs.POST("/upload/:employee_id", guard.Require("document", "update"), handler.Upload)
	}
}
