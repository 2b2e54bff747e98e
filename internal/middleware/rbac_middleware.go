package middleware

import (
	"go-emprecords/internal/shared/apperror"
	"go-emprecords/internal/shared/contextutil"
	"go-emprecords/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Enforcer decides whether role may perform action on resource.
type Enforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

func authorize(c *gin.Context, enforcer Enforcer, resource, action string) bool {
	role := c.GetString(ContextRoleKey)
	if role == "" {
		abortWithError(c, apperror.ErrUnauthorized)
		return false
	}

	allowed, err := enforcer.Enforce(role, resource, action)
	if err != nil {
		contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		abortWithError(c, err)
		return false
	}

	if !allowed {
		response.Error(c,
			apperror.ErrForbidden.HTTPStatus,
			apperror.ErrForbidden.Code,
			apperror.ErrForbidden.Message,
			gin.H{"required": resource + ":" + action},
		)
		return false
	}
	return true
}
