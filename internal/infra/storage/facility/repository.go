package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	"github.com/faithworks/FWS-ReservationService/pkg/dbmetrics"
	"github.com/faithworks/FWS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий каталога помещений.
// Справочные данные: создаются и редактируются администратором,
// сервис бронирования их только читает.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория помещений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var facilityColumns = []string{
	"id",
	"name",
	"building",
	"floor",
	"capacity",
	"amenities",
	"setup_minutes",
	"cleanup_minutes",
	"requires_approval",
	"description",
	"created_at",
	"updated_at",
}

// GetByID получает помещение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	facility, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	return facility, nil
}

// List получает список помещений с фильтрацией по зданию, вместимости и удобству.
// Фильтрация - простой предикатный скан: каталог небольшой, индексы не нужны.
func (r *Repository) List(ctx context.Context, filter domain.FacilityFilter) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		OrderBy("building ASC, name ASC")

	if filter.Building != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"building": *filter.Building})
	}
	if filter.MinCapacity != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": *filter.MinCapacity})
	}
	if filter.Amenity != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("amenities @> ?", pq.Array([]string{*filter.Amenity})))
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

	facilities := make([]*domain.Facility, 0)

	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// scanner общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanFacility сканирует строку результата в domain.Facility
func scanFacility(row scanner) (*domain.Facility, error) {
	var facility domain.Facility
	var amenities pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facility.Building,
		&facility.Floor,
		&facility.Capacity,
		&amenities,
		&facility.SetupMinutes,
		&facility.CleanupMinutes,
		&facility.RequiresApproval,
		&facility.Description,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	facility.Amenities = amenities
	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return &facility, nil
}
