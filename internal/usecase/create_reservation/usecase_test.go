package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	facilityRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/facility"
	"github.com/faithworks/FWS-ReservationService/internal/queue"
	"github.com/faithworks/FWS-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	existing   []*domain.Reservation
	created    *domain.Reservation
	lastFilter domain.ReservationFilter
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	created := *r
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.existing, nil
}

type fakeFacilityRepo struct {
	facilities map[int64]*domain.Facility
}

func (f *fakeFacilityRepo) GetByID(_ context.Context, id int64) (*domain.Facility, error) {
	facility, ok := f.facilities[id]
	if !ok {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	return facility, nil
}

type fakeApprovalRepo struct {
	created *domain.ApprovalRequest
}

func (f *fakeApprovalRepo) Create(_ context.Context, r *domain.ApprovalRequest) (*domain.ApprovalRequest, error) {
	created := *r
	created.ID = 7
	created.RequestedAt = time.Now()
	f.created = &created
	return &created, nil
}

type fakePublisher struct {
	confirmed []queue.ReservationConfirmedEvent
}

func (f *fakePublisher) PublishReservationConfirmed(_ context.Context, event queue.ReservationConfirmedEvent) error {
	f.confirmed = append(f.confirmed, event)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(reservations *fakeReservationRepo, facilities *fakeFacilityRepo, approvals *fakeApprovalRepo, publisher *fakePublisher) *UseCase {
	return NewUseCase(reservations, facilities, approvals, publisher, fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		FacilityID: 1,
		Date:       time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "12:00",
		EventTitle: "Воскресная служба",
		CreatedBy:  5,
	}
}

func openFacility() *domain.Facility {
	return &domain.Facility{ID: 1, Name: "Главный зал", Building: "A", Capacity: 200}
}

func TestExecute_CreatesConfirmedReservation(t *testing.T) {
	reservations := &fakeReservationRepo{}
	facilities := &fakeFacilityRepo{facilities: map[int64]*domain.Facility{1: openFacility()}}
	approvals := &fakeApprovalRepo{}
	publisher := &fakePublisher{}

	uc := newTestUseCase(reservations, facilities, approvals, publisher)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.ReservationConfirmed), resp.Status)
	assert.Nil(t, resp.ApprovalRequestID)
	assert.Nil(t, approvals.created)

	// Подтверждение публикуется как событие
	require.Len(t, publisher.confirmed, 1)
	assert.Equal(t, int64(42), publisher.confirmed[0].ReservationID)
	assert.Equal(t, "Главный зал", publisher.confirmed[0].FacilityName)
}

func TestExecute_ChecksOnlyConfirmedReservations(t *testing.T) {
	reservations := &fakeReservationRepo{}
	facilities := &fakeFacilityRepo{facilities: map[int64]*domain.Facility{1: openFacility()}}

	uc := newTestUseCase(reservations, facilities, &fakeApprovalRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// pending_approval заявки слот не держат - детектор смотрит
	// только подтверждённые бронирования
	assert.True(t, reservations.lastFilter.ConfirmedOnly)
	assert.Equal(t, int64(1), reservations.lastFilter.FacilityID)
}

func TestExecute_RejectsOverlap(t *testing.T) {
	reservations := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ID: 1, FacilityID: 1, StartTime: "11:00", EndTime: "13:00", EventTitle: "Репетиция хора", Status: domain.ReservationConfirmed},
		},
	}
	facilities := &fakeFacilityRepo{facilities: map[int64]*domain.Facility{1: openFacility()}}

	uc := newTestUseCase(reservations, facilities, &fakeApprovalRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Репетиция хора", conflict.EventTitle)

	// Никаких частичных записей при конфликте
	assert.Nil(t, reservations.created)
}

func TestExecute_AllowsBackToBack(t *testing.T) {
	reservations := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ID: 1, FacilityID: 1, StartTime: "08:00", EndTime: "10:00", EventTitle: "Молитвенное собрание", Status: domain.ReservationConfirmed},
			{ID: 2, FacilityID: 1, StartTime: "12:00", EndTime: "14:00", EventTitle: "Обед", Status: domain.ReservationConfirmed},
		},
	}
	facilities := &fakeFacilityRepo{facilities: map[int64]*domain.Facility{1: openFacility()}}

	uc := newTestUseCase(reservations, facilities, &fakeApprovalRepo{}, &fakePublisher{})

	// [10:00, 12:00) встык с обоими соседями - границы полуоткрытые
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.ReservationConfirmed), resp.Status)
}

func TestExecute_RoutesThroughApproval(t *testing.T) {
	reservations := &fakeReservationRepo{}
	facility := openFacility()
	facility.RequiresApproval = true
	facilities := &fakeFacilityRepo{facilities: map[int64]*domain.Facility{1: facility}}
	approvals := &fakeApprovalRepo{}
	publisher := &fakePublisher{}

	uc := newTestUseCase(reservations, facilities, approvals, publisher)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.ReservationPendingApproval), resp.Status)
	require.NotNil(t, resp.ApprovalRequestID)
	assert.Equal(t, int64(7), *resp.ApprovalRequestID)

	require.NotNil(t, approvals.created)
	assert.Equal(t, domain.RequestTypeRoom, approvals.created.Type)
	require.NotNil(t, approvals.created.ReservationID)
	assert.Equal(t, int64(42), *approvals.created.ReservationID)

	// Pending бронирование не подтверждено - события нет
	assert.Empty(t, publisher.confirmed)
}

func TestExecute_RejectsInvalidTimeRange(t *testing.T) {
	facilities := &fakeFacilityRepo{facilities: map[int64]*domain.Facility{1: openFacility()}}
	uc := newTestUseCase(&fakeReservationRepo{}, facilities, &fakeApprovalRepo{}, &fakePublisher{})

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"start after end", "12:00", "10:00"},
		{"zero length", "10:00", "10:00"},
		{"invalid format", "9am", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = types.TimeString(tt.start)
			req.EndTime = types.TimeString(tt.end)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
		})
	}
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeFacilityRepo{facilities: map[int64]*domain.Facility{}}, &fakeApprovalRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
