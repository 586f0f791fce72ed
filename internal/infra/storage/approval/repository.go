package approval

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	"github.com/faithworks/FWS-ReservationService/pkg/dbmetrics"
	"github.com/faithworks/FWS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий запросов на согласование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория согласований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var approvalColumns = []string{
	"id",
	"request_type",
	"title",
	"description",
	"priority",
	"requested_by",
	"requested_at",
	"status",
	"reservation_id",
	"allocation_request_id",
	"reviewed_by",
	"reviewed_at",
	"comments",
}

// Create создает новый запрос на согласование в статусе pending
func (r *Repository) Create(ctx context.Context, request *domain.ApprovalRequest) (*domain.ApprovalRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("approval_requests").
		Columns(
			"request_type",
			"title",
			"description",
			"priority",
			"requested_by",
			"status",
			"reservation_id",
			"allocation_request_id",
		).
		Values(
			request.Type,
			request.Title,
			request.Description,
			request.Priority,
			request.RequestedBy,
			request.Status,
			request.ReservationID,
			request.AllocationRequestID,
		).
		Suffix("RETURNING id, requested_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&request.RequestedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return request, nil
}

// GetByID получает запрос на согласование по ID.
// Внутри транзакции читает с блокировкой FOR UPDATE: две конкурентные
// резолюции одного запроса сериализуются, вторая увидит терминальный статус.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(approvalColumns...).
		From("approval_requests").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	request, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return request, nil
}

// ListWithFilter получает очередь согласования с фильтрацией по статусу и типу.
// Порядок: более срочные первыми, внутри приоритета - по времени подачи.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ApprovalFilter) ([]*domain.ApprovalRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(approvalColumns...).
		From("approval_requests").
		OrderBy(
			"CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'normal' THEN 2 ELSE 3 END ASC",
			"requested_at ASC",
		)

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"request_type": *filter.Type})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.ApprovalRequest, 0)

	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// Resolve переводит запрос из pending в терминальный статус, фиксируя
// рецензента, время и комментарий. Обновляются только pending-строки:
// если запрос уже резолюцирован, вернётся ErrAlreadyResolved.
func (r *Repository) Resolve(ctx context.Context, id int64, status domain.ApprovalStatus, reviewerID int64, comment *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("approval_requests").
		Set("status", status).
		Set("reviewed_by", reviewerID).
		Set("reviewed_at", squirrel.Expr("NOW()")).
		Set("comments", comment).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.ApprovalPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Resolve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Resolve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Resolve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо запроса нет, либо он уже в терминальном статусе
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrAlreadyResolved
	}

	return nil
}

// scanner общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRequest сканирует строку результата в domain.ApprovalRequest
func scanRequest(row scanner) (*domain.ApprovalRequest, error) {
	var request domain.ApprovalRequest

	err := row.Scan(
		&request.ID,
		&request.Type,
		&request.Title,
		&request.Description,
		&request.Priority,
		&request.RequestedBy,
		&request.RequestedAt,
		&request.Status,
		&request.ReservationID,
		&request.AllocationRequestID,
		&request.ReviewedBy,
		&request.ReviewedAt,
		&request.Comments,
	)

	if err != nil {
		return nil, err
	}

	return &request, nil
}
