package rbac_test

import (
	"testing"

	"go-emprecords/internal/rbac"
	"go-emprecords/internal/shared/token"

	"github.com/stretchr/testify/assert"
)

func TestService_Enforce(t *testing.T) {
	svc, err := rbac.NewService(rbac.DefaultPolicies)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"admin deletes employee", token.RoleAdmin, "employee", "delete", true},
		{"admin changes password", token.RoleAdmin, "admin", "update", true},
		{"employee reads roster", token.RoleEmployee, "employee", "read", true},
		{"employee records leave", token.RoleEmployee, "leave_event", "create", true},
		{"employee reads documents", token.RoleEmployee, "document", "read", true},
		{"employee cannot delete employee", token.RoleEmployee, "employee", "delete", false},
		{"employee cannot upload documents", token.RoleEmployee, "document", "update", false},
		{"employee cannot delete leave", token.RoleEmployee, "leave_event", "delete", false},
		{"unknown role", "guest", "employee", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.role, tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestService_EmptyPolicies(t *testing.T) {
	svc, err := rbac.NewService(nil)
	assert.NoError(t, err)

	allowed, err := svc.Enforce(token.RoleAdmin, "employee", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)
}
