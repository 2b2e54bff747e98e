package middleware

import (
	"strings"

	"go-emprecords/internal/shared/apperror"
	"go-emprecords/internal/shared/contextutil"
	"go-emprecords/internal/shared/response"
	"go-emprecords/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	ContextClaimsKey  = "auth_claims"
	ContextSubjectKey = "subject"
	ContextRoleKey    = "role"
)

type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// AuthMiddleware requires a valid bearer token, read from the Authorization
// header or the access_token cookie.
func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, parser) {
			return
		}
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by a successful authentication.
func ClaimsFromContext(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok && claims != nil
}

func authenticate(c *gin.Context, parser TokenParser) bool {
	if parser == nil {
		abortWithError(c, apperror.ErrUnauthorized)
		return false
	}

	claims, err := parser.Parse(bearerToken(c))
	if err != nil {
		abortWithError(c, err)
		return false
	}

	c.Set(ContextClaimsKey, claims)
	c.Set(ContextSubjectKey, claims.Subject)
	c.Set(ContextRoleKey, claims.Role)
	c.Request = c.Request.WithContext(contextutil.WithSubject(c.Request.Context(), claims.Subject))
	return true
}

func bearerToken(c *gin.Context) string {
	if tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return strings.TrimSpace(tokenString)
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func abortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
