package annualleaveerrors

import (
	"net/http"

	"go-care/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	ErrInvalidActorID   = apperror.New(apperror.CodeInvalidInput, "invalid actor id", http.StatusBadRequest)
	ErrInvalidBranchID  = apperror.New(apperror.CodeInvalidInput, "invalid branch id", http.StatusBadRequest)
	ErrInvalidStaffID   = apperror.New(apperror.CodeInvalidInput, "invalid staff id", http.StatusBadRequest)
	ErrInvalidID        = apperror.New(apperror.CodeInvalidInput, "invalid annual leave id", http.StatusBadRequest)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from must not be after to",
		http.StatusBadRequest,
	)
	ErrLeaveNameRequired = apperror.New(
		apperror.CodeValidationFailed,
		"leave name is required",
		http.StatusBadRequest,
	)
	ErrScopeRequired = apperror.New(
		apperror.CodeValidationFailed,
		"entry must be company wide or target a branch or staff member",
		http.StatusBadRequest,
	)
	ErrTimeBoundsIncomplete = apperror.New(
		apperror.CodeValidationFailed,
		"start_time and end_time must be given together",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeValidationFailed,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeValidationFailed,
		"start_time must be before end_time",
		http.StatusBadRequest,
	)
	ErrEmptyIDList = apperror.New(
		apperror.CodeValidationFailed,
		"at least one id is required",
		http.StatusBadRequest,
	)

	ErrAnnualLeaveNotFound = apperror.New(apperror.CodeNotFound, "annual leave entry not found", http.StatusNotFound)
	ErrSeriesNotFound      = apperror.New(apperror.CodeNotFound, "annual leave series not found", http.StatusNotFound)

	ErrBulkDeleteIncomplete = apperror.New(
		apperror.CodeConflict,
		"some annual leave entries could not be deleted, nothing was removed",
		http.StatusConflict,
	)
	ErrDuplicateEntry = apperror.New(
		apperror.CodeConflict,
		"annual leave entry already exists for this date",
		http.StatusConflict,
	)
)
