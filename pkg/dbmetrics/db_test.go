package dbmetrics

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	mu         sync.Mutex
	operations []string
	errors     int
}

func (c *recordingCollector) ObserveDBQuery(operation string, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operations = append(c.operations, operation)
	if err != nil {
		c.errors++
	}
}

func (c *recordingCollector) SetDBPoolStats(int, int, int, int64) {}

func TestDB_ObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	collector := &recordingCollector{}
	db := Wrap(sqlDB, collector)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
		WithArgs("completed").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM ovens")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("oven-a"))

	_, err = db.ExecContext(context.Background(), "UPDATE bookings SET status = $1", "completed")
	require.NoError(t, err)

	rows, err := db.QueryContext(context.Background(), "SELECT id FROM ovens")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{"update", "select"}, collector.operations)
	assert.Zero(t, collector.errors)
}

func TestDB_TransactionInContext(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := Wrap(sqlDB, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationName(t *testing.T) {
	assert.Equal(t, "select", operationName("  SELECT * FROM bookings"))
	assert.Equal(t, "insert", operationName("INSERT INTO ovens"))
	assert.Equal(t, "unknown", operationName(""))
}
