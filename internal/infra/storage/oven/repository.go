package oven

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	"github.com/m04kA/SMC-OvenBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-OvenBooking/pkg/psqlbuilder"
)

const table = "ovens"

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var columns = []string{
	"id",
	"name",
	"status",
	"description",
	"max_temperature",
	"capacity",
	"location",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с печами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория печей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую печь
func (r *Repository) Create(ctx context.Context, oven *domain.Oven) (*domain.Oven, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if oven.ID == "" {
		oven.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "name", "status", "description", "max_temperature", "capacity", "location").
		Values(
			oven.ID,
			oven.Name,
			oven.Status,
			oven.Description,
			oven.MaxTemperature,
			oven.Capacity,
			oven.Location,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if hasCode(err, pgUniqueViolation) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	oven.CreatedAt = createdAt.Time
	oven.UpdatedAt = updatedAt.Time

	return oven, nil
}

// GetByID получает печь по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Oven, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	oven, err := scanOven(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOvenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan oven: %w", ErrScanRow, err)
	}

	return oven, nil
}

// List получает все печи, опционально только с указанным статусом
func (r *Repository) List(ctx context.Context, status *domain.OvenStatus) ([]domain.Oven, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ovens := make([]domain.Oven, 0)
	for rows.Next() {
		oven, err := scanOven(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		ovens = append(ovens, *oven)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return ovens, nil
}

// Update обновляет печь
func (r *Repository) Update(ctx context.Context, oven *domain.Oven) (*domain.Oven, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", oven.Name).
		Set("status", oven.Status).
		Set("description", oven.Description).
		Set("max_temperature", oven.MaxTemperature).
		Set("capacity", oven.Capacity).
		Set("location", oven.Location).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": oven.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOvenNotFound
	}
	if err != nil {
		if hasCode(err, pgUniqueViolation) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	oven.CreatedAt = createdAt.Time
	oven.UpdatedAt = updatedAt.Time

	return oven, nil
}

// Delete удаляет печь
// Печь с историей бронирований удалить нельзя (FK), ее следует перевести в статус retired
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if hasCode(err, pgForeignKeyViolation) {
			return ErrOvenReferenced
		}
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOvenNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOven(row rowScanner) (*domain.Oven, error) {
	var oven domain.Oven
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&oven.ID,
		&oven.Name,
		&oven.Status,
		&oven.Description,
		&oven.MaxTemperature,
		&oven.Capacity,
		&oven.Location,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	oven.CreatedAt = createdAt.Time
	oven.UpdatedAt = updatedAt.Time

	return &oven, nil
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
