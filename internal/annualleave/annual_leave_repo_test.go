package annualleave_test

import (
	"context"
	"database/sql"
	"testing"

	"go-care/internal/annualleave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type repoDeps struct {
	sqlDB *sql.DB
	mock  sqlmock.Sqlmock
	repo  annualleave.Repository
}

func setupRepoTest(t *testing.T) *repoDeps {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return &repoDeps{sqlDB: sqlDB, mock: mock, repo: annualleave.NewRepository(gdb)}
}

func TestRepository_CreateBatchIsOneStatement(t *testing.T) {
	deps := setupRepoTest(t)
	defer deps.sqlDB.Close()

	base := annualleave.AnnualLeaveEntry{
		CompanyID:     uuid.New(),
		LeaveDate:     day("2026-01-05"),
		LeaveName:     "Weekly",
		IsCompanyWide: true,
		CreatedBy:     uuid.New(),
	}
	rows := annualleave.ExpandWeekly(base)

	returned := sqlmock.NewRows([]string{"id"})
	for _, r := range rows {
		returned.AddRow(r.ID.String())
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectQuery(`INSERT INTO "annual_leave_calendar"`).WillReturnRows(returned)
	deps.mock.ExpectCommit()

	tx, err := deps.sqlDB.Begin()
	assert.NoError(t, err)

	err = deps.repo.WithTx(tx).CreateBatch(context.Background(), rows)
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestRepository_DeleteManyReportsAffectedRows(t *testing.T) {
	deps := setupRepoTest(t)
	defer deps.sqlDB.Close()

	deps.mock.ExpectBegin()
	deps.mock.ExpectExec(`DELETE FROM "annual_leave_calendar" WHERE .*id IN`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.mock.ExpectRollback()

	tx, err := deps.sqlDB.Begin()
	assert.NoError(t, err)

	n, err := deps.repo.WithTx(tx).DeleteMany(context.Background(), uuid.NewString(), []string{uuid.NewString(), uuid.NewString()})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestRepository_DeleteMissingRowIsNotFound(t *testing.T) {
	deps := setupRepoTest(t)
	defer deps.sqlDB.Close()

	deps.mock.ExpectExec(`DELETE FROM "annual_leave_calendar"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := deps.repo.Delete(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestRepository_FindForBranchInRangeIncludesCompanyWide(t *testing.T) {
	deps := setupRepoTest(t)
	defer deps.sqlDB.Close()

	branchID := uuid.NewString()
	deps.mock.ExpectQuery(`SELECT \* FROM "annual_leave_calendar" WHERE .*\(branch_id = \$\d+ OR is_company_wide = \$\d+\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "leave_name", "is_company_wide"}).
			AddRow(uuid.NewString(), "New Year", true).
			AddRow(uuid.NewString(), "Branch picnic", false))

	got, err := deps.repo.FindForBranchInRange(context.Background(), uuid.NewString(), branchID, day("2026-01-01"), day("2026-12-31"))

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, got[0].IsCompanyWide)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}
