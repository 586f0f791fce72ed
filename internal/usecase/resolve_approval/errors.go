package resolve_approval

import (
	"errors"
	"fmt"

	"github.com/faithworks/FWS-ReservationService/pkg/types"
)

var (
	// ErrRequestNotFound возвращается, когда запрос на согласование не найден
	ErrRequestNotFound = errors.New("resolve_approval: approval request not found")

	// ErrReviewerNotFound возвращается, когда ревьюер не найден в IdentityService
	ErrReviewerNotFound = errors.New("resolve_approval: reviewer not found")

	// ErrNotAuthorized возвращается, когда ревьюер не вправе согласовывать
	// запросы этого типа
	ErrNotAuthorized = errors.New("resolve_approval: reviewer is not authorized to approve this request type")

	// ErrInvalidStateTransition возвращается при попытке резолюции из
	// терминального состояния: рассинхрон UI или гонка двух ревьюеров
	ErrInvalidStateTransition = errors.New("resolve_approval: invalid state transition")

	// ErrCommentRequired возвращается при отклонении без комментария
	ErrCommentRequired = errors.New("resolve_approval: comment is required for rejection")

	// ErrConflictAtApproval возвращается, когда слот pending-бронирования
	// к моменту согласования уже занят подтверждённым
	ErrConflictAtApproval = errors.New("resolve_approval: reservation conflicts at approval time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_approval: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_approval: internal error")
)

// ApprovalConflictError описывает бронирование, успевшее занять слот
// за время ожидания согласования
type ApprovalConflictError struct {
	EventTitle string
	StartTime  types.TimeString
	EndTime    types.TimeString
}

func (e *ApprovalConflictError) Error() string {
	return fmt.Sprintf("resolve_approval: conflict at approval with %q (%s-%s)",
		e.EventTitle, e.StartTime, e.EndTime)
}

// Is позволяет errors.Is(err, ErrConflictAtApproval) для типизированной ошибки
func (e *ApprovalConflictError) Is(target error) bool {
	return target == ErrConflictAtApproval
}
