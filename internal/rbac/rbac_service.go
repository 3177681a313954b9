package rbac

import (
	"errors"
	"strings"
	"sync"

	rbacerrors "go-care/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req EnforceRequest) (bool, error)

	ListRoles(companyID string) ([]RoleResponse, error)
	CreateRole(companyID string, req CreateRoleRequest) (RoleResponse, error)
	DeleteRole(companyID, roleID string) error
	ListPermissions() ([]PermissionResponse, error)
	SetRolePermissions(companyID, roleID string, req SetRolePermissionsRequest) error
	AssignStaffRole(companyID, roleID string, req AssignStaffRoleRequest) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

// The enforcer holds one company's policy at a time; callers hold s.mu.
func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	s.enforcer.ClearPolicy()

	staffRoles, err := s.repo.GetStaffRoles(companyID)
	if err != nil {
		return err
	}
	for _, sr := range staffRoles {
		if _, err := s.enforcer.AddGroupingPolicy(sr.StaffID, sr.RoleID, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(companyID)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("staff_roles", len(staffRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.StaffID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("staff_id", req.StaffID),
			zap.String("company_id", req.CompanyID),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("staff_id", req.StaffID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(companyID string) ([]RoleResponse, error) {
	rows, err := s.repo.ListRoles(companyID)
	if err != nil {
		s.logger.Error("list roles failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}
	out := make([]RoleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapRole(r))
	}
	return out, nil
}

func (s *service) CreateRole(companyID string, req CreateRoleRequest) (RoleResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return RoleResponse{}, rbacerrors.ErrRoleNameRequired
	}

	role := RoleRow{
		CompanyID:   companyID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.CreateRole(&role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return RoleResponse{}, rbacerrors.ErrRoleNameTaken
		}
		s.logger.Error("create role failed", zap.String("company_id", companyID), zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("role created",
		zap.String("company_id", companyID),
		zap.String("role_id", role.ID),
		zap.String("name", role.Name),
	)
	return mapRole(role), nil
}

func (s *service) DeleteRole(companyID, roleID string) error {
	if _, err := uuid.Parse(roleID); err != nil {
		return rbacerrors.ErrInvalidRoleID
	}
	n, err := s.repo.DeleteRole(companyID, roleID)
	if err != nil {
		s.logger.Error("delete role failed", zap.String("role_id", roleID), zap.Error(err))
		return err
	}
	if n == 0 {
		return rbacerrors.ErrRoleNotFound
	}
	s.logger.Info("role deleted", zap.String("company_id", companyID), zap.String("role_id", roleID))
	return nil
}

func (s *service) ListPermissions() ([]PermissionResponse, error) {
	rows, err := s.repo.ListPermissions()
	if err != nil {
		s.logger.Error("list permissions failed", zap.Error(err))
		return nil, err
	}
	out := make([]PermissionResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		})
	}
	return out, nil
}

// SetRolePermissions replaces the role's grants. Duplicate ids are ignored.
func (s *service) SetRolePermissions(companyID, roleID string, req SetRolePermissionsRequest) error {
	if err := s.companyRole(companyID, roleID); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(req.PermissionIDs))
	ids := make([]string, 0, len(req.PermissionIDs))
	for _, id := range req.PermissionIDs {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return rbacerrors.ErrInvalidPermissionID
		}
		key := parsed.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, key)
	}

	if err := s.repo.UpdateRolePermissions(roleID, ids); err != nil {
		s.logger.Error("update role permissions failed", zap.String("role_id", roleID), zap.Error(err))
		return err
	}
	s.logger.Info("role permissions updated",
		zap.String("company_id", companyID),
		zap.String("role_id", roleID),
		zap.Int("permissions", len(ids)),
	)
	return nil
}

func (s *service) AssignStaffRole(companyID, roleID string, req AssignStaffRoleRequest) error {
	if _, err := uuid.Parse(req.StaffID); err != nil {
		return rbacerrors.ErrInvalidStaffID
	}
	if err := s.companyRole(companyID, roleID); err != nil {
		return err
	}
	if err := s.repo.AssignStaffRole(req.StaffID, roleID); err != nil {
		s.logger.Error("assign staff role failed",
			zap.String("role_id", roleID),
			zap.String("staff_id", req.StaffID),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("staff role assigned",
		zap.String("company_id", companyID),
		zap.String("role_id", roleID),
		zap.String("staff_id", req.StaffID),
	)
	return nil
}

// companyRole checks that roleID names a role of companyID.
func (s *service) companyRole(companyID, roleID string) error {
	if _, err := uuid.Parse(roleID); err != nil {
		return rbacerrors.ErrInvalidRoleID
	}
	if _, err := s.repo.GetRoleByID(companyID, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rbacerrors.ErrRoleNotFound
		}
		return err
	}
	return nil
}

func mapRole(r RoleRow) RoleResponse {
	return RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description}
}
