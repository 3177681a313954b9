package leave

import (
	"errors"
	"strings"

	leaveerrors "go-care/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
	pgForeignKeyMissing  = "23503"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation, pgUniqueViolation:
			if pgErr.ConstraintName == "ex_staff_leave_overlap" {
				return leaveerrors.ErrLeaveOverlap
			}
		case pgForeignKeyMissing:
			if strings.Contains(pgErr.ConstraintName, "staff") {
				return leaveerrors.ErrStaffNotInCompany
			}
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "ex_staff_leave_overlap") {
		return leaveerrors.ErrLeaveOverlap
	}

	return err
}
