package calendar

import (
	"go-emprecords/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler, guard *middleware.AccessGuard) {
	events := r.Group("/events")
	{
		events.GET("", handler.List)
		events.POST("", guard.Require("event", "create"), handler.Create)
		events.DELETE("/:id", guard.Require("event", "delete"), handler.Delete)
	}
}
