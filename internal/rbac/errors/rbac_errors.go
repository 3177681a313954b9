package rbacerrors

import (
	"net/http"

	"go-care/internal/shared/apperror"
)

var (
	ErrInvalidRoleID       = apperror.New(apperror.CodeInvalidInput, "invalid role id", http.StatusBadRequest)
	ErrInvalidPermissionID = apperror.New(apperror.CodeInvalidInput, "invalid permission id", http.StatusBadRequest)
	ErrInvalidStaffID      = apperror.New(apperror.CodeInvalidInput, "invalid staff id", http.StatusBadRequest)
	ErrRoleNameRequired    = apperror.New(apperror.CodeValidationFailed, "role name is required", http.StatusBadRequest)
	ErrRoleNotFound        = apperror.New(apperror.CodeNotFound, "role not found", http.StatusNotFound)
	ErrRoleNameTaken       = apperror.New(apperror.CodeConflict, "a role with this name already exists", http.StatusConflict)
)
