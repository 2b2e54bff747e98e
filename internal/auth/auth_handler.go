package auth

import (
	"errors"
	"net/http"

	autherrors "go-emprecords/internal/auth/errors"
	"go-emprecords/internal/middleware"
	"go-emprecords/internal/shared/apperror"
	"go-emprecords/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http auth validation failed", zap.Error(err))
	appErr := apperror.MapValidationError(err)
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
}

// EmployeeLogin answers 200 with success=false on any credential mismatch and
// never says which field was wrong.
func (h *Handler) EmployeeLogin(c *gin.Context) {
	var req EmployeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	res, err := h.service.EmployeeLogin(c.Request.Context(), req)
	if errors.Is(err, autherrors.ErrInvalidCredentials) {
		response.Auth(c, http.StatusOK, response.AuthResult{Success: false, Message: invalidLoginMessage})
		return
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Auth(c, http.StatusOK, response.AuthResult{
		Success:  true,
		Employee: res.Employee,
		Token:    res.Token,
	})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	signed, err := h.service.AdminLogin(c.Request.Context(), req)
	if errors.Is(err, autherrors.ErrInvalidAdminCredentials) {
		response.Auth(c, http.StatusOK, response.AuthResult{
			Success: false,
			Message: autherrors.ErrInvalidAdminCredentials.Message,
		})
		return
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Auth(c, http.StatusOK, response.AuthResult{
		Success: true,
		Message: "Admin login successful",
		Token:   signed,
	})
}

func (h *Handler) ChangeAdminPassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	if err := h.service.ChangeAdminPassword(c.Request.Context(), req.NewPassword); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Auth(c, http.StatusOK, response.AuthResult{
		Success: true,
		Message: "Password updated successfully",
	})
}

func (h *Handler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		h.writeServiceError(c, autherrors.ErrTokenMissing)
		return
	}

	res := MeResponse{Subject: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		res.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	response.Success(c, http.StatusOK, res)
}
