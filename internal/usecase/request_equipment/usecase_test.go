package request_equipment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	equipmentRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/equipment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeEquipmentRepo struct {
	items       map[int64]*domain.EquipmentItem
	adjustments map[int64]int
}

func (f *fakeEquipmentRepo) GetByID(_ context.Context, id int64) (*domain.EquipmentItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, equipmentRepo.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeEquipmentRepo) AdjustAvailable(_ context.Context, id int64, delta int) error {
	if f.adjustments == nil {
		f.adjustments = make(map[int64]int)
	}
	f.adjustments[id] += delta
	if item, ok := f.items[id]; ok {
		item.AvailableQuantity += delta
	}
	return nil
}

type fakeAllocationRepo struct {
	nextID      int64
	request     *domain.AllocationRequest
	allocations []*domain.EquipmentAllocation
}

func (f *fakeAllocationRepo) CreateRequest(_ context.Context, r *domain.AllocationRequest) (*domain.AllocationRequest, error) {
	created := *r
	created.ID = 100
	created.CreatedAt = time.Now()
	f.request = &created
	return &created, nil
}

func (f *fakeAllocationRepo) CreateAllocation(_ context.Context, a *domain.EquipmentAllocation) (*domain.EquipmentAllocation, error) {
	f.nextID++
	created := *a
	created.ID = f.nextID
	f.allocations = append(f.allocations, &created)
	return &created, nil
}

type fakeApprovalRepo struct {
	created *domain.ApprovalRequest
}

func (f *fakeApprovalRepo) Create(_ context.Context, r *domain.ApprovalRequest) (*domain.ApprovalRequest, error) {
	created := *r
	created.ID = 7
	f.created = &created
	return &created, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(equipment *fakeEquipmentRepo, allocations *fakeAllocationRepo, approvals *fakeApprovalRepo) *UseCase {
	return NewUseCase(equipment, allocations, approvals, fakeTxManager{}, nopLogger{})
}

func stockedRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: map[int64]*domain.EquipmentItem{
		1: {ID: 1, Name: "Стул складной", Category: "furniture", Quantity: 200, AvailableQuantity: 150},
		2: {ID: 2, Name: "Микрофон", Category: "audio", Quantity: 10, AvailableQuantity: 4},
	}}
}

func TestExecute_AllocatesAndDecrements(t *testing.T) {
	equipment := stockedRepo()
	allocations := &fakeAllocationRepo{}
	approvals := &fakeApprovalRepo{}

	uc := newTestUseCase(equipment, allocations, approvals)

	resp, err := uc.Execute(context.Background(), &Request{
		Items:       []Line{{EquipmentID: 1, Quantity: 50}, {EquipmentID: 2, Quantity: 2}},
		RequestedBy: 5,
		EventTitle:  "Молодёжная встреча",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.RequestID)
	assert.Equal(t, string(domain.AllocationConfirmed), resp.Status)
	assert.Nil(t, resp.ApprovalRequestID)
	require.Len(t, resp.Allocations, 2)

	// Доступное количество списано по каждой позиции
	assert.Equal(t, -50, equipment.adjustments[1])
	assert.Equal(t, -2, equipment.adjustments[2])

	require.Len(t, allocations.allocations, 2)
	assert.Equal(t, int64(100), allocations.allocations[0].RequestID)
	assert.Nil(t, approvals.created)
}

func TestExecute_InsufficientQuantityRejectsWholeCart(t *testing.T) {
	equipment := stockedRepo()
	allocations := &fakeAllocationRepo{}

	uc := newTestUseCase(equipment, allocations, &fakeApprovalRepo{})

	// Первая позиция проходит, вторая превышает доступное
	_, err := uc.Execute(context.Background(), &Request{
		Items:       []Line{{EquipmentID: 1, Quantity: 50}, {EquipmentID: 2, Quantity: 5}},
		RequestedBy: 5,
		EventTitle:  "Молодёжная встреча",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientQuantity)

	var insufficient *InsufficientQuantityError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(2), insufficient.EquipmentID)
	assert.Equal(t, 5, insufficient.Requested)
	assert.Equal(t, 4, insufficient.Available)

	// Всё или ничего: прошедшая позиция не списана, записей нет
	assert.Empty(t, equipment.adjustments)
	assert.Nil(t, allocations.request)
	assert.Empty(t, allocations.allocations)
}

func TestExecute_PendingApprovalHoldsQuantity(t *testing.T) {
	equipment := stockedRepo()
	allocations := &fakeAllocationRepo{}
	approvals := &fakeApprovalRepo{}

	uc := newTestUseCase(equipment, allocations, approvals)

	resp, err := uc.Execute(context.Background(), &Request{
		Items:            []Line{{EquipmentID: 2, Quantity: 3}},
		RequestedBy:      5,
		EventTitle:       "Конференция",
		RequiresApproval: true,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.AllocationPendingApproval), resp.Status)
	require.NotNil(t, resp.ApprovalRequestID)
	assert.Equal(t, int64(7), *resp.ApprovalRequestID)

	// Количество удерживается сразу, до решения согласующего
	assert.Equal(t, -3, equipment.adjustments[2])

	require.NotNil(t, approvals.created)
	assert.Equal(t, domain.RequestTypeEquipment, approvals.created.Type)
	require.NotNil(t, approvals.created.AllocationRequestID)
	assert.Equal(t, int64(100), *approvals.created.AllocationRequestID)
}

func TestExecute_ExactDepletionThenRefusal(t *testing.T) {
	equipment := &fakeEquipmentRepo{items: map[int64]*domain.EquipmentItem{
		1: {ID: 1, Name: "Стул складной", Category: "furniture", Quantity: 20, AvailableQuantity: 20},
	}}
	uc := newTestUseCase(equipment, &fakeAllocationRepo{}, &fakeApprovalRepo{})

	// Забираем весь пул целиком - граница включительная
	_, err := uc.Execute(context.Background(), &Request{
		Items:       []Line{{EquipmentID: 1, Quantity: 20}},
		RequestedBy: 5,
		EventTitle:  "Праздничный обед",
	})
	require.NoError(t, err)

	// Следующему запросу не достаётся ничего
	_, err = uc.Execute(context.Background(), &Request{
		Items:       []Line{{EquipmentID: 1, Quantity: 1}},
		RequestedBy: 6,
		EventTitle:  "Репетиция",
	})
	require.Error(t, err)

	var insufficient *InsufficientQuantityError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Available)
}

func TestExecute_EquipmentNotFound(t *testing.T) {
	uc := newTestUseCase(stockedRepo(), &fakeAllocationRepo{}, &fakeApprovalRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Items:       []Line{{EquipmentID: 99, Quantity: 1}},
		RequestedBy: 5,
		EventTitle:  "Событие",
	})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(stockedRepo(), &fakeAllocationRepo{}, &fakeApprovalRepo{})

	tests := []struct {
		name    string
		request *Request
		wantErr error
	}{
		{
			"empty cart",
			&Request{Items: nil, RequestedBy: 5, EventTitle: "Событие"},
			ErrInvalidInput,
		},
		{
			"zero quantity",
			&Request{Items: []Line{{EquipmentID: 1, Quantity: 0}}, RequestedBy: 5, EventTitle: "Событие"},
			ErrInvalidInput,
		},
		{
			"duplicate lines",
			&Request{Items: []Line{{EquipmentID: 1, Quantity: 2}, {EquipmentID: 1, Quantity: 3}}, RequestedBy: 5, EventTitle: "Событие"},
			ErrDuplicateLine,
		},
		{
			"missing title",
			&Request{Items: []Line{{EquipmentID: 1, Quantity: 2}}, RequestedBy: 5, EventTitle: "  "},
			ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
