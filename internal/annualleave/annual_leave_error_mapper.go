package annualleave

import (
	"errors"

	annualleaveerrors "go-care/internal/annualleave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return annualleaveerrors.ErrAnnualLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return annualleaveerrors.ErrDuplicateEntry
	}
	return err
}
