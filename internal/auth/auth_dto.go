package auth

import (
	"time"

	"go-emprecords/internal/employee"
)

const invalidLoginMessage = "Invalid ID or Password"

// Login fields are not binding-required: an empty field is a credential
// mismatch and answers success=false like any other.
type EmployeeLoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type EmployeeLoginResult struct {
	Employee employee.EmployeeResponse
	Token    string
}

type MeResponse struct {
	Subject   string    `json:"sub"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"exp"`
}
