package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"go-emprecords/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "Resource not found", httpErr.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("service: %w", apperror.ErrForbidden)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusForbidden, httpErr.Status)
		assert.Equal(t, apperror.CodeForbidden, httpErr.Code)
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}

func TestAppError_WithCause(t *testing.T) {
	cause := errors.New("duplicate key value")
	err := apperror.ErrInvalidInput.WithCause(cause)

	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, apperror.ErrNotFound))
	assert.Contains(t, err.Error(), "duplicate key value")
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		JoiningDate string `json:"joining_date" validate:"required"`
		Grade       string `json:"grade" validate:"omitempty,max=2"`
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string { return fld.Tag.Get("json") })

	t.Run("required", func(t *testing.T) {
		err := v.Struct(payload{})
		appErr := apperror.MapValidationError(err)

		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, "Joining Date is required", appErr.Message)
	})

	t.Run("invalid", func(t *testing.T) {
		err := v.Struct(payload{JoiningDate: "2024-01-01", Grade: "ABC"})
		appErr := apperror.MapValidationError(err)

		assert.Equal(t, "Grade is invalid", appErr.Message)
	})

	t.Run("non validator error", func(t *testing.T) {
		appErr := apperror.MapValidationError(errors.New("unexpected EOF"))

		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Equal(t, "Invalid input", appErr.Message)
	})
}
