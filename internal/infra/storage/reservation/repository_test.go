package reservation

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// captureExecutor записывает выполненные запросы; Discard и Cancel
// используют только ExecContext
type captureExecutor struct {
	query        string
	args         []interface{}
	rowsAffected int64
}

func (c *captureExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	c.query = query
	c.args = args
	return driver.RowsAffected(c.rowsAffected), nil
}

func (c *captureExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, sql.ErrNoRows
}

func (c *captureExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestDiscard_UpdatesStatusInsteadOfDeleting(t *testing.T) {
	executor := &captureExecutor{rowsAffected: 1}
	repo := NewRepository(executor)

	err := repo.Discard(context.Background(), 42)
	require.NoError(t, err)

	// Строка остаётся в таблице: на неё ссылается approval_requests.reservation_id,
	// физический DELETE нарушил бы внешний ключ
	assert.Contains(t, executor.query, "UPDATE reservations")
	assert.NotContains(t, executor.query, "DELETE")
	assert.Contains(t, executor.query, "cancelled_at")
	assert.Contains(t, executor.args, domain.ReservationCancelled)
	// Отбрасываются только pending-бронирования
	assert.Contains(t, executor.args, domain.ReservationPendingApproval)
}

func TestDiscard_NotPendingReturnsNotFound(t *testing.T) {
	executor := &captureExecutor{rowsAffected: 0}
	repo := NewRepository(executor)

	err := repo.Discard(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
