package token

import (
	"errors"
	"testing"
	"time"

	autherrors "go-emprecords/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	signed, exp, err := m.Issue("EMP-000001", RoleEmployee)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(signed)
	assert.NoError(t, err)
	assert.Equal(t, "EMP-000001", claims.Subject)
	assert.Equal(t, RoleEmployee, claims.Role)
}

func TestManager_Parse(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := NewManager("secret", time.Hour).Parse("")
		assert.True(t, errors.Is(err, autherrors.ErrTokenMissing))
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed, _, _ := NewManager("secret", time.Hour).Issue("admin", RoleAdmin)

		_, err := NewManager("other", time.Hour).Parse(signed)
		assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		m := NewManager("secret", time.Minute)
		m.now = func() time.Time { return time.Now().Add(-time.Hour) }
		signed, _, _ := m.Issue("admin", RoleAdmin)

		_, err := NewManager("secret", time.Minute).Parse(signed)
		assert.True(t, errors.Is(err, autherrors.ErrTokenExpired))
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
			Role:             RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
		})
		signed, _ := tok.SignedString([]byte("secret"))

		_, err := NewManager("secret", time.Hour).Parse(signed)
		assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))
	})
}
