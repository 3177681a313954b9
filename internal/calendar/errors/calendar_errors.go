package calendarerrors

import (
	"net/http"

	"go-care/internal/shared/apperror"
)

var (
	ErrInvalidBranchID = apperror.New(apperror.CodeInvalidInput, "invalid branch id", http.StatusBadRequest)
	ErrInvalidYear     = apperror.New(apperror.CodeInvalidInput, "year must be between 1970 and 9999", http.StatusBadRequest)
)
