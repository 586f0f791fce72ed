package equipment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	"github.com/faithworks/FWS-ReservationService/pkg/dbmetrics"
	"github.com/faithworks/FWS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий каталога инвентаря.
// Счётчик available_quantity меняется ТОЛЬКО через AdjustAvailable
// внутри транзакции аллокатора - прямой записи из других слоёв нет.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инвентаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var equipmentColumns = []string{
	"id",
	"name",
	"category",
	"quantity",
	"available_quantity",
	"storage_location",
	"description",
	"created_at",
	"updated_at",
}

// GetByID получает позицию инвентаря по ID.
// Внутри транзакции читает с блокировкой FOR UPDATE - это критическая секция
// "проверить-затем-записать" аллокатора.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.EquipmentItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(equipmentColumns...).
		From("equipment_items").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	return item, nil
}

// List получает список инвентаря с фильтрацией по категории.
// Категория - основной ключ поиска по каталогу, по ней есть индекс.
func (r *Repository) List(ctx context.Context, filter domain.EquipmentFilter) ([]*domain.EquipmentItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(equipmentColumns...).
		From("equipment_items").
		OrderBy("category ASC, name ASC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.EquipmentItem, 0)

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// AdjustAvailable изменяет счётчик доступности на delta (отрицательная -
// выдача, положительная - возврат). Запрос защищён условием на инвариант
// 0 <= available_quantity <= quantity: при его нарушении ни одна строка
// не обновится и вернётся ErrQuantityConflict.
func (r *Repository) AdjustAvailable(ctx context.Context, id int64, delta int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("equipment_items").
		Set("available_quantity", squirrel.Expr("available_quantity + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("available_quantity + ? >= 0", delta)).
		Where(squirrel.Expr("available_quantity + ? <= quantity", delta)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AdjustAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AdjustAvailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AdjustAvailable - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо позиции нет, либо инвариант не позволил изменение
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrQuantityConflict
	}

	return nil
}

// scanner общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanItem сканирует строку результата в domain.EquipmentItem
func scanItem(row scanner) (*domain.EquipmentItem, error) {
	var item domain.EquipmentItem
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Quantity,
		&item.AvailableQuantity,
		&item.StorageLocation,
		&item.Description,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}
