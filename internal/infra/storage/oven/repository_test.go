package oven

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	"github.com/m04kA/SMC-OvenBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-OvenBooking/pkg/ptr"
)

var created = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO ovens \(id,name,status,description,max_temperature,capacity,location\)`).
		WithArgs(sqlmock.AnyArg(), "Carbolite 1", "active", nil, 1100, nil, "Lab 2").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	oven, err := repo.Create(context.Background(), &domain.Oven{
		Name:           "Carbolite 1",
		Status:         domain.OvenStatusActive,
		MaxTemperature: ptr.Ptr(1100),
		Location:       ptr.Ptr("Lab 2"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, oven.ID)
	assert.Equal(t, created, oven.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateName(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO ovens`).WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Oven{Name: "dup", Status: domain.OvenStatusActive})

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM ovens WHERE status = \$1 ORDER BY name ASC`).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("o1", "A", "active", "muffle", 1200, "10 L", nil, created, created).
			AddRow("o2", "B", "active", nil, nil, nil, nil, created, created))

	status := domain.OvenStatusActive
	ovens, err := repo.List(context.Background(), &status)

	require.NoError(t, err)
	require.Len(t, ovens, 2)
	assert.Equal(t, 1200, ptr.Deref(ovens[0].MaxTemperature, 0))
	assert.Equal(t, "muffle", ptr.Deref(ovens[0].Description, ""))
	assert.Nil(t, ovens[1].MaxTemperature)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM ovens WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrOvenNotFound)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE ovens SET (.+) WHERE id = \$7 RETURNING created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), &domain.Oven{ID: "missing", Name: "A", Status: domain.OvenStatusRetired})

	assert.ErrorIs(t, err, ErrOvenNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM ovens WHERE id = \$1`).
		WithArgs("o1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM ovens WHERE id = \$1`).
		WithArgs("o2").
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectExec(`DELETE FROM ovens WHERE id = \$1`).
		WithArgs("o3").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "o1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "o2"), ErrOvenReferenced)
	assert.ErrorIs(t, repo.Delete(context.Background(), "o3"), ErrOvenNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
