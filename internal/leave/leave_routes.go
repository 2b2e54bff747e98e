package leave

import (
	"go-emprecords/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the leave endpoints. rdb enables Idempotency-Key
// handling on create and may be nil.
func RegisterRoutes(r gin.IRouter, handler *Handler, guard *middleware.AccessGuard, rdb *redis.Client) {
	create := []gin.HandlerFunc{
		guard.Require("leave_event", "create"),
		middleware.Idempotency(rdb, middleware.DefaultIdempotencyTTL),
		handler.Record,
	}

	for _, prefix := range []string{"/leave-events", "/api/leave-events"} {
		r.GET(prefix, handler.List)
		r.POST(prefix, create...)
	}

	r.DELETE("/api/leave-events/:id", guard.Require("leave_event", "delete"), handler.Delete)
	r.GET("/api/leaves/summary/:employee_id", handler.Summary)
}
