package rbac

import "go-care/internal/domain"

type EnforceRequest = domain.EnforceRequest

type EnforceResponse = domain.EnforceResponse

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
}

type SetRolePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" binding:"omitempty,dive,uuid"`
}

type AssignStaffRoleRequest struct {
	StaffID string `json:"staff_id" binding:"required,uuid"`
}

type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}
