package documenterrors

import (
	"net/http"

	"go-emprecords/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidDocType = apperror.New(
		apperror.CodeValidation,
		"doc_type must be offer_letter or salary_slip",
		http.StatusBadRequest,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeValidation,
		"file is required",
		http.StatusBadRequest,
	)
)
