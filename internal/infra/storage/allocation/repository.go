package allocation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	"github.com/faithworks/FWS-ReservationService/pkg/dbmetrics"
	"github.com/faithworks/FWS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий запросов инвентаря и их аллокаций.
// Запрос (allocation_requests) - заголовок корзины, аллокации
// (equipment_allocations) - её позиции. Статусы позиций зеркалят
// статус запроса-владельца.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аллокаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateRequest создает заголовок мультипозиционного запроса инвентаря
func (r *Repository) CreateRequest(ctx context.Context, request *domain.AllocationRequest) (*domain.AllocationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("allocation_requests").
		Columns(
			"requested_by",
			"event_title",
			"notes",
			"status",
		).
		Values(
			request.RequestedBy,
			request.EventTitle,
			request.Notes,
			request.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRequest - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRequest - execute insert: %v", ErrExecQuery, err)
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return request, nil
}

// CreateAllocation создает одну позицию запроса
func (r *Repository) CreateAllocation(ctx context.Context, alloc *domain.EquipmentAllocation) (*domain.EquipmentAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("equipment_allocations").
		Columns(
			"request_id",
			"equipment_id",
			"quantity",
			"status",
		).
		Values(
			alloc.RequestID,
			alloc.EquipmentID,
			alloc.Quantity,
			alloc.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateAllocation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&alloc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateAllocation - execute insert: %v", ErrExecQuery, err)
	}

	alloc.CreatedAt = createdAt.Time
	alloc.UpdatedAt = updatedAt.Time

	return alloc, nil
}

// GetRequestByID получает заголовок запроса по ID.
// Внутри транзакции читает с блокировкой FOR UPDATE - релиз и резолюция
// согласования должны видеть актуальный статус.
func (r *Repository) GetRequestByID(ctx context.Context, id int64) (*domain.AllocationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"requested_by",
		"event_title",
		"notes",
		"status",
		"created_at",
		"updated_at",
	).
		From("allocation_requests").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRequestByID - build select query: %v", ErrBuildQuery, err)
	}

	var request domain.AllocationRequest
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&request.RequestedBy,
		&request.EventTitle,
		&request.Notes,
		&request.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRequestByID - scan request: %v", ErrScanRow, err)
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return &request, nil
}

// GetAllocationsByRequestID получает все позиции запроса в порядке создания
func (r *Repository) GetAllocationsByRequestID(ctx context.Context, requestID int64) ([]*domain.EquipmentAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"request_id",
		"equipment_id",
		"quantity",
		"status",
		"released_at",
		"created_at",
		"updated_at",
	).
		From("equipment_allocations").
		Where(squirrel.Eq{"request_id": requestID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllocationsByRequestID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllocationsByRequestID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	allocations := make([]*domain.EquipmentAllocation, 0)

	for rows.Next() {
		var alloc domain.EquipmentAllocation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&alloc.ID,
			&alloc.RequestID,
			&alloc.EquipmentID,
			&alloc.Quantity,
			&alloc.Status,
			&alloc.ReleasedAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetAllocationsByRequestID - scan row: %v", ErrScanRow, err)
		}

		alloc.CreatedAt = createdAt.Time
		alloc.UpdatedAt = updatedAt.Time

		allocations = append(allocations, &alloc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllocationsByRequestID - rows error: %v", ErrScanRow, err)
	}

	return allocations, nil
}

// UpdateRequestStatus обновляет статус заголовка запроса
func (r *Repository) UpdateRequestStatus(ctx context.Context, id int64, status domain.AllocationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("allocation_requests").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRequestStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRequestStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRequestStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// UpdateAllocationsStatus обновляет статус всех позиций запроса разом.
// Для перехода в released дополнительно проставляется released_at,
// но только активным позициям - повторный релиз ничего не трогает.
func (r *Repository) UpdateAllocationsStatus(ctx context.Context, requestID int64, status domain.AllocationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("equipment_allocations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"request_id": requestID})

	if status == domain.AllocationReleased {
		updateBuilder = updateBuilder.
			Set("released_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"status": []domain.AllocationStatus{
				domain.AllocationConfirmed,
				domain.AllocationPendingApproval,
			}})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateAllocationsStatus - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateAllocationsStatus - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
