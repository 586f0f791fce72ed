package release_allocations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	allocationRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/allocation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeEquipmentRepo struct {
	adjustments map[int64]int
}

func (f *fakeEquipmentRepo) AdjustAvailable(_ context.Context, id int64, delta int) error {
	if f.adjustments == nil {
		f.adjustments = make(map[int64]int)
	}
	f.adjustments[id] += delta
	return nil
}

type fakeAllocationRepo struct {
	request            *domain.AllocationRequest
	allocations        []*domain.EquipmentAllocation
	requestStatus      *domain.AllocationStatus
	allocationsStatus  *domain.AllocationStatus
	statusUpdateCalls  int
	requestUpdateCalls int
}

func (f *fakeAllocationRepo) GetRequestByID(_ context.Context, id int64) (*domain.AllocationRequest, error) {
	if f.request == nil || f.request.ID != id {
		return nil, allocationRepo.ErrRequestNotFound
	}
	return f.request, nil
}

func (f *fakeAllocationRepo) GetAllocationsByRequestID(_ context.Context, _ int64) ([]*domain.EquipmentAllocation, error) {
	return f.allocations, nil
}

func (f *fakeAllocationRepo) UpdateRequestStatus(_ context.Context, _ int64, status domain.AllocationStatus) error {
	f.requestStatus = &status
	f.requestUpdateCalls++
	return nil
}

func (f *fakeAllocationRepo) UpdateAllocationsStatus(_ context.Context, _ int64, status domain.AllocationStatus) error {
	f.allocationsStatus = &status
	f.statusUpdateCalls++
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestExecute_RestoresQuantities(t *testing.T) {
	equipment := &fakeEquipmentRepo{}
	allocations := &fakeAllocationRepo{
		request: &domain.AllocationRequest{ID: 100, Status: domain.AllocationConfirmed},
		allocations: []*domain.EquipmentAllocation{
			{ID: 1, RequestID: 100, EquipmentID: 1, Quantity: 50, Status: domain.AllocationConfirmed},
			{ID: 2, RequestID: 100, EquipmentID: 2, Quantity: 3, Status: domain.AllocationConfirmed},
		},
	}

	uc := NewUseCase(equipment, allocations, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 100})
	require.NoError(t, err)

	assert.Equal(t, string(domain.AllocationReleased), resp.Status)
	assert.False(t, resp.AlreadyReleased)
	assert.Equal(t, map[int64]int{1: 50, 2: 3}, resp.ReleasedQuantityByID)

	// Количество вернулось в пул, статусы переведены
	assert.Equal(t, 50, equipment.adjustments[1])
	assert.Equal(t, 3, equipment.adjustments[2])
	require.NotNil(t, allocations.requestStatus)
	assert.Equal(t, domain.AllocationReleased, *allocations.requestStatus)
	require.NotNil(t, allocations.allocationsStatus)
	assert.Equal(t, domain.AllocationReleased, *allocations.allocationsStatus)
}

func TestExecute_SkipsAlreadyReleasedAllocations(t *testing.T) {
	equipment := &fakeEquipmentRepo{}
	allocations := &fakeAllocationRepo{
		request: &domain.AllocationRequest{ID: 100, Status: domain.AllocationConfirmed},
		allocations: []*domain.EquipmentAllocation{
			{ID: 1, RequestID: 100, EquipmentID: 1, Quantity: 50, Status: domain.AllocationConfirmed},
			{ID: 2, RequestID: 100, EquipmentID: 2, Quantity: 3, Status: domain.AllocationReleased},
		},
	}

	uc := NewUseCase(equipment, allocations, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 100})
	require.NoError(t, err)

	// Уже освобождённая аллокация не зачисляется второй раз
	assert.Equal(t, map[int64]int{1: 50}, resp.ReleasedQuantityByID)
	assert.Equal(t, 50, equipment.adjustments[1])
	assert.Zero(t, equipment.adjustments[2])
}

func TestExecute_IdempotentOnReleasedRequest(t *testing.T) {
	equipment := &fakeEquipmentRepo{}
	allocations := &fakeAllocationRepo{
		request: &domain.AllocationRequest{ID: 100, Status: domain.AllocationReleased},
		allocations: []*domain.EquipmentAllocation{
			{ID: 1, RequestID: 100, EquipmentID: 1, Quantity: 50, Status: domain.AllocationReleased},
		},
	}

	uc := NewUseCase(equipment, allocations, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 100})
	require.NoError(t, err)

	assert.True(t, resp.AlreadyReleased)
	assert.Equal(t, string(domain.AllocationReleased), resp.Status)
	assert.Empty(t, resp.ReleasedQuantityByID)

	// Повторный вызов ничего не пишет
	assert.Empty(t, equipment.adjustments)
	assert.Zero(t, allocations.requestUpdateCalls)
	assert.Zero(t, allocations.statusUpdateCalls)
}

func TestExecute_RequestNotFound(t *testing.T) {
	uc := NewUseCase(&fakeEquipmentRepo{}, &fakeAllocationRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 99})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestExecute_InvalidRequestID(t *testing.T) {
	uc := NewUseCase(&fakeEquipmentRepo{}, &fakeAllocationRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
