package rbac

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (sqlmock.Sqlmock, Repository) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return mock, NewRepository(gdb)
}

func TestRepository_ListRoles(t *testing.T) {
	mock, repo := setupRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "roles" WHERE company_id = \$1 ORDER BY name`).
		WithArgs("company-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "name"}).
			AddRow("role-1", "company-1", "HR").
			AddRow("role-2", "company-1", "Manager"))

	got, err := repo.ListRoles("company-1")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Manager", got[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateRolePermissions(t *testing.T) {
	t.Run("replaces grants in one transaction", func(t *testing.T) {
		mock, repo := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM role_permissions WHERE role_id = \$1`).
			WithArgs("role-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`INSERT INTO role_permissions \(role_id, permission_id\) VALUES \(\$1, \$2\)`).
			WithArgs("role-1", "perm-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO role_permissions \(role_id, permission_id\) VALUES \(\$1, \$2\)`).
			WithArgs("role-1", "perm-2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateRolePermissions("role-1", []string{"perm-1", "perm-2"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative insert failure rolls back", func(t *testing.T) {
		mock, repo := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM role_permissions`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO role_permissions`).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.UpdateRolePermissions("role-1", []string{"perm-1"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteRole(t *testing.T) {
	t.Run("removes grants and assignments", func(t *testing.T) {
		mock, repo := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "roles" WHERE id = \$1 AND company_id = \$2`).
			WithArgs("role-1", "company-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM role_permissions WHERE role_id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM staff_roles WHERE role_id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectCommit()

		n, err := repo.DeleteRole("company-1", "role-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other company's role is left alone", func(t *testing.T) {
		mock, repo := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "roles"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		n, err := repo.DeleteRole("company-2", "role-1")

		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
