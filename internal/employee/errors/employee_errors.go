package employeeerrors

import (
	"go-emprecords/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidImage = apperror.New(
		apperror.CodeInvalidInput,
		"Profile image must be a valid JPEG, PNG, GIF, BMP or TIFF file",
		http.StatusBadRequest,
	)
	ErrImageRequired = apperror.New(
		apperror.CodeValidation,
		"profile_image file is required",
		http.StatusBadRequest,
	)
)
