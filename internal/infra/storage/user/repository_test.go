package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	"github.com/m04kA/SMC-OvenBooking/pkg/dbmetrics"
)

var created = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO users \(id,name,email\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(id\) DO UPDATE`).
		WithArgs("u1", "Ann", "ann@lab.org").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("u1", "Ann", "ann@lab.org", true, created))

	user, err := repo.Upsert(context.Background(), &domain.User{ID: "u1", Name: "Ann", Email: "ann@lab.org"})

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, domain.RoleAdmin, user.Role())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, name, email, is_admin, created_at FROM users WHERE id = \$1`).
		WithArgs("u9").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "u9")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY name ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u1", "Ann", "ann@lab.org", true, created).
			AddRow("u2", "Bob", "bob@lab.org", false, created))

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, domain.RoleUser, users[1].Role())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetAdmin(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE users SET is_admin = \$1 WHERE id = \$2`).
		WithArgs(true, "u2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET is_admin = \$1 WHERE id = \$2`).
		WithArgs(false, "u9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SetAdmin(context.Background(), "u2", true))
	assert.ErrorIs(t, repo.SetAdmin(context.Background(), "u9", false), ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
