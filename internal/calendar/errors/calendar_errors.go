package calendarerrors

import (
	"net/http"

	"go-emprecords/internal/shared/apperror"
)

var (
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid event id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrTitleRequired = apperror.New(
		apperror.CodeValidation,
		"Title is required",
		http.StatusBadRequest,
	)
)
