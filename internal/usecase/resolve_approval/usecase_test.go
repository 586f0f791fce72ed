package resolve_approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	approvalRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/approval"
	reservationRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/reservation"
	"github.com/faithworks/FWS-ReservationService/internal/integrations/identityservice"
	"github.com/faithworks/FWS-ReservationService/internal/queue"
	"github.com/faithworks/FWS-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeApprovalRepo struct {
	approval *domain.ApprovalRequest
}

func (f *fakeApprovalRepo) GetByID(_ context.Context, id int64) (*domain.ApprovalRequest, error) {
	if f.approval == nil || f.approval.ID != id {
		return nil, approvalRepo.ErrRequestNotFound
	}
	copied := *f.approval
	return &copied, nil
}

func (f *fakeApprovalRepo) Resolve(_ context.Context, id int64, status domain.ApprovalStatus, reviewerID int64, comment *string) error {
	if f.approval == nil || f.approval.ID != id {
		return approvalRepo.ErrRequestNotFound
	}
	if f.approval.Status != domain.ApprovalPending {
		return approvalRepo.ErrAlreadyResolved
	}
	now := time.Now()
	f.approval.Status = status
	f.approval.ReviewedBy = ptr.Ptr(reviewerID)
	f.approval.ReviewedAt = &now
	f.approval.Comments = comment
	return nil
}

type fakeReservationRepo struct {
	reservation *domain.Reservation
	existing    []*domain.Reservation
	updatedTo   *domain.ReservationStatus
	discarded   bool
	discardErr  error
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.reservation, nil
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	f.updatedTo = &status
	return nil
}

func (f *fakeReservationRepo) Discard(_ context.Context, _ int64) error {
	if f.discardErr != nil {
		return f.discardErr
	}
	f.discarded = true
	return nil
}

type fakeAllocationRepo struct {
	currentStatus     domain.AllocationStatus // статус заголовка запроса; zero value трактуется как pending
	allocations       []*domain.EquipmentAllocation
	requestStatus     *domain.AllocationStatus
	allocationsStatus *domain.AllocationStatus
}

func (f *fakeAllocationRepo) GetRequestByID(_ context.Context, id int64) (*domain.AllocationRequest, error) {
	status := f.currentStatus
	if status == "" {
		status = domain.AllocationPendingApproval
	}
	return &domain.AllocationRequest{ID: id, Status: status}, nil
}

func (f *fakeAllocationRepo) GetAllocationsByRequestID(_ context.Context, _ int64) ([]*domain.EquipmentAllocation, error) {
	return f.allocations, nil
}

func (f *fakeAllocationRepo) UpdateRequestStatus(_ context.Context, _ int64, status domain.AllocationStatus) error {
	f.requestStatus = &status
	return nil
}

func (f *fakeAllocationRepo) UpdateAllocationsStatus(_ context.Context, _ int64, status domain.AllocationStatus) error {
	f.allocationsStatus = &status
	return nil
}

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

type fakeFacilityRepo struct{}

func (fakeFacilityRepo) GetByID(_ context.Context, id int64) (*domain.Facility, error) {
	return &domain.Facility{ID: id, Name: "Главный зал"}, nil
}

type fakeIdentityClient struct {
	err error
}

func (f *fakeIdentityClient) CanApprove(_ context.Context, _ int64, _ string) error {
	return f.err
}

type fakePublisher struct {
	approved  []queue.RequestApprovedEvent
	rejected  []queue.RequestRejectedEvent
	confirmed []queue.ReservationConfirmedEvent
}

func (f *fakePublisher) PublishReservationConfirmed(_ context.Context, e queue.ReservationConfirmedEvent) error {
	f.confirmed = append(f.confirmed, e)
	return nil
}

func (f *fakePublisher) PublishRequestApproved(_ context.Context, e queue.RequestApprovedEvent) error {
	f.approved = append(f.approved, e)
	return nil
}

func (f *fakePublisher) PublishRequestRejected(_ context.Context, e queue.RequestRejectedEvent) error {
	f.rejected = append(f.rejected, e)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixtures struct {
	approvals    *fakeApprovalRepo
	reservations *fakeReservationRepo
	allocations  *fakeAllocationRepo
	equipment    *fakeEquipmentRepo
	identity     *fakeIdentityClient
	publisher    *fakePublisher
}

func newFixtures() *fixtures {
	return &fixtures{
		approvals:    &fakeApprovalRepo{},
		reservations: &fakeReservationRepo{},
		allocations:  &fakeAllocationRepo{},
		equipment:    &fakeEquipmentRepo{},
		identity:     &fakeIdentityClient{},
		publisher:    &fakePublisher{},
	}
}

func (f *fixtures) useCase() *UseCase {
	return NewUseCase(f.approvals, f.reservations, f.allocations, f.equipment,
		fakeFacilityRepo{}, f.identity, f.publisher, fakeTxManager{}, nopLogger{})
}

func pendingRoomApproval() *domain.ApprovalRequest {
	return &domain.ApprovalRequest{
		ID:            10,
		Type:          domain.RequestTypeRoom,
		Title:         "Воскресная служба",
		Priority:      domain.PriorityNormal,
		RequestedBy:   5,
		Status:        domain.ApprovalPending,
		ReservationID: ptr.Ptr(int64(42)),
	}
}

func pendingEquipmentApproval() *domain.ApprovalRequest {
	return &domain.ApprovalRequest{
		ID:                  10,
		Type:                domain.RequestTypeEquipment,
		Title:               "Конференция",
		Priority:            domain.PriorityNormal,
		RequestedBy:         5,
		Status:              domain.ApprovalPending,
		AllocationRequestID: ptr.Ptr(int64(100)),
	}
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         42,
		FacilityID: 1,
		Date:       time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "12:00",
		EventTitle: "Воскресная служба",
		Status:     domain.ReservationPendingApproval,
		CreatedBy:  5,
	}
}

func TestExecute_ApproveRoomConfirmsReservation(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingRoomApproval()
	f.reservations.reservation = pendingReservation()

	resp, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionApprove,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ApprovalApproved), resp.Status)
	assert.Equal(t, int64(3), resp.ReviewedBy)
	require.NotNil(t, resp.ReviewedAt)

	// Бронирование зафиксировано вместе с резолюцией
	require.NotNil(t, f.reservations.updatedTo)
	assert.Equal(t, domain.ReservationConfirmed, *f.reservations.updatedTo)

	// Два события: резолюция и подтверждение бронирования
	require.Len(t, f.publisher.approved, 1)
	assert.Equal(t, int64(10), f.publisher.approved[0].RequestID)
	require.Len(t, f.publisher.confirmed, 1)
	assert.Equal(t, int64(42), f.publisher.confirmed[0].ReservationID)
	assert.Equal(t, "Главный зал", f.publisher.confirmed[0].FacilityName)
}

func TestExecute_ApproveRoomConflictAtApproval(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingRoomApproval()
	f.reservations.reservation = pendingReservation()
	// Пока заявка ждала согласования, слот занял другой
	f.reservations.existing = []*domain.Reservation{
		{ID: 77, FacilityID: 1, StartTime: "11:00", EndTime: "13:00", EventTitle: "Репетиция хора", Status: domain.ReservationConfirmed},
	}

	_, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionApprove,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictAtApproval)

	var conflict *ApprovalConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Репетиция хора", conflict.EventTitle)

	// Ни бронирование, ни согласование не изменились
	assert.Nil(t, f.reservations.updatedTo)
	assert.Equal(t, domain.ApprovalPending, f.approvals.approval.Status)
	assert.Empty(t, f.publisher.approved)
}

func TestExecute_ApproveIgnoresOwnReservationInConflictCheck(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingRoomApproval()
	reservation := pendingReservation()
	f.reservations.reservation = reservation
	// Детектор видит в списке само фиксируемое бронирование
	f.reservations.existing = []*domain.Reservation{reservation}

	_, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionApprove,
	})
	require.NoError(t, err)
}

func TestExecute_RejectRoomDiscardsReservation(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingRoomApproval()
	f.reservations.reservation = pendingReservation()

	resp, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionReject,
		Comment:    ptr.Ptr("Зал занят под ремонт"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ApprovalRejected), resp.Status)
	require.NotNil(t, resp.Comments)
	assert.Equal(t, "Зал занят под ремонт", *resp.Comments)

	assert.True(t, f.reservations.discarded)
	require.Len(t, f.publisher.rejected, 1)
	assert.Equal(t, "Зал занят под ремонт", f.publisher.rejected[0].Comments)
	assert.Empty(t, f.publisher.confirmed)
}

func TestExecute_RejectRoomWithCancelledReservation(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingRoomApproval()
	// Автор отменил бронирование, пока согласование висело pending -
	// отбрасывать нечего, но отклонение должно закрыть запрос
	f.reservations.discardErr = reservationRepo.ErrReservationNotFound

	resp, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionReject,
		Comment:    ptr.Ptr("Помещение недоступно"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ApprovalRejected), resp.Status)
	require.Len(t, f.publisher.rejected, 1)
}

func TestExecute_ApproveEquipmentConfirmsAllocations(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingEquipmentApproval()

	resp, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionApprove,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ApprovalApproved), resp.Status)

	require.NotNil(t, f.allocations.requestStatus)
	assert.Equal(t, domain.AllocationConfirmed, *f.allocations.requestStatus)
	require.NotNil(t, f.allocations.allocationsStatus)
	assert.Equal(t, domain.AllocationConfirmed, *f.allocations.allocationsStatus)

	// Количество удерживалось с момента запроса - повторного списания нет
	assert.Empty(t, f.equipment.adjustments)
}

func TestExecute_ApproveReleasedEquipmentRequestFails(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingEquipmentApproval()
	// Запрос инвентаря освободили, пока согласование висело pending -
	// количество уже вернулось в пул
	f.allocations.currentStatus = domain.AllocationReleased
	f.allocations.allocations = []*domain.EquipmentAllocation{
		{ID: 1, RequestID: 100, EquipmentID: 2, Quantity: 3, Status: domain.AllocationReleased},
	}

	_, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionApprove,
	})
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	// Освобождённые аллокации не подтверждаются задним числом,
	// счётчик доступности не трогается
	assert.Nil(t, f.allocations.requestStatus)
	assert.Nil(t, f.allocations.allocationsStatus)
	assert.Empty(t, f.equipment.adjustments)
	assert.Equal(t, domain.ApprovalPending, f.approvals.approval.Status)
}

func TestExecute_RejectEquipmentRestoresQuantity(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingEquipmentApproval()
	f.allocations.allocations = []*domain.EquipmentAllocation{
		{ID: 1, RequestID: 100, EquipmentID: 2, Quantity: 3, Status: domain.AllocationPendingApproval},
	}

	_, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionReject,
		Comment:    ptr.Ptr("Инвентарь нужен для другого события"),
	})
	require.NoError(t, err)

	// Удержанное количество вернулось в пул
	assert.Equal(t, 3, f.equipment.adjustments[2])
	require.NotNil(t, f.allocations.requestStatus)
	assert.Equal(t, domain.AllocationReleased, *f.allocations.requestStatus)
	require.Len(t, f.publisher.rejected, 1)
}

func TestExecute_RejectWithoutComment(t *testing.T) {
	f := newFixtures()
	f.approvals.approval = pendingRoomApproval()

	tests := []struct {
		name    string
		comment *string
	}{
		{"nil comment", nil},
		{"blank comment", ptr.Ptr("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.useCase().Execute(context.Background(), &Request{
				ApprovalID: 10,
				ReviewerID: 3,
				Action:     ActionReject,
				Comment:    tt.comment,
			})
			assert.ErrorIs(t, err, ErrCommentRequired)
		})
	}
}

func TestExecute_TerminalStateIsImmutable(t *testing.T) {
	f := newFixtures()
	approval := pendingRoomApproval()
	approval.Status = domain.ApprovalApproved
	f.approvals.approval = approval

	_, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 10,
		ReviewerID: 3,
		Action:     ActionApprove,
	})
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestExecute_ReviewerAuthorization(t *testing.T) {
	tests := []struct {
		name        string
		identityErr error
		wantErr     error
	}{
		{"reviewer not found", identityservice.ErrReviewerNotFound, ErrReviewerNotFound},
		{"not authorized for type", identityservice.ErrNotAuthorized, ErrNotAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtures()
			f.approvals.approval = pendingRoomApproval()
			f.identity.err = tt.identityErr

			_, err := f.useCase().Execute(context.Background(), &Request{
				ApprovalID: 10,
				ReviewerID: 3,
				Action:     ActionApprove,
			})
			assert.ErrorIs(t, err, tt.wantErr)

			// До транзакции дело не дошло
			assert.Equal(t, domain.ApprovalPending, f.approvals.approval.Status)
		})
	}
}

func TestExecute_RequestNotFound(t *testing.T) {
	f := newFixtures()

	_, err := f.useCase().Execute(context.Background(), &Request{
		ApprovalID: 99,
		ReviewerID: 3,
		Action:     ActionApprove,
	})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
