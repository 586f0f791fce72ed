package get_booked_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	facilityRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/facility"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	lastFilter   domain.ReservationFilter
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.reservations, nil
}

type fakeFacilityRepo struct {
	facility *domain.Facility
}

func (f *fakeFacilityRepo) GetByID(_ context.Context, id int64) (*domain.Facility, error) {
	if f.facility == nil || f.facility.ID != id {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	return f.facility, nil
}

func TestExecute_ReturnsSlotsInRepositoryOrder(t *testing.T) {
	// Репозиторий отдаёт бронирования по возрастанию start_time,
	// usecase порядок не меняет
	reservations := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 1, FacilityID: 1, StartTime: "09:00", EndTime: "10:30", EventTitle: "Молитвенное собрание", Status: domain.ReservationConfirmed},
			{ID: 2, FacilityID: 1, StartTime: "12:00", EndTime: "14:00", EventTitle: "Обед", Status: domain.ReservationConfirmed},
		},
	}
	facilities := &fakeFacilityRepo{facility: &domain.Facility{ID: 1, Name: "Главный зал"}}

	uc := NewUseCase(reservations, facilities, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.FacilityID)
	assert.Equal(t, "Главный зал", resp.FacilityName)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, "Молитвенное собрание", resp.Slots[0].EventTitle)
	assert.Equal(t, 90, resp.Slots[0].DurationMinutes)
	assert.Equal(t, "Обед", resp.Slots[1].EventTitle)
	assert.Equal(t, 120, resp.Slots[1].DurationMinutes)
}

func TestExecute_FiltersConfirmedOnly(t *testing.T) {
	reservations := &fakeReservationRepo{}
	facilities := &fakeFacilityRepo{facility: &domain.Facility{ID: 1, Name: "Главный зал"}}

	uc := NewUseCase(reservations, facilities, nopLogger{})

	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: date})
	require.NoError(t, err)

	// В календаре занятости видны только подтверждённые бронирования
	assert.True(t, reservations.lastFilter.ConfirmedOnly)
	assert.Equal(t, int64(1), reservations.lastFilter.FacilityID)
	require.NotNil(t, reservations.lastFilter.Date)
	assert.Equal(t, date, *reservations.lastFilter.Date)
}

func TestExecute_EmptyDay(t *testing.T) {
	facilities := &fakeFacilityRepo{facility: &domain.Facility{ID: 1, Name: "Главный зал"}}
	uc := NewUseCase(&fakeReservationRepo{}, facilities, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeFacilityRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeFacilityRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FacilityID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
