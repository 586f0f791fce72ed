package resolve_approval

import (
	"fmt"
	"strings"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отклонение без причины не проходит - это контракт воркфлоу,
// а не пожелание UI.
func validateRequest(req *Request) error {
	if req.ApprovalID <= 0 {
		return fmt.Errorf("%w: approvalId must be positive", ErrInvalidInput)
	}

	if req.ReviewerID <= 0 {
		return fmt.Errorf("%w: reviewerId must be positive", ErrInvalidInput)
	}

	switch req.Action {
	case ActionApprove, ActionReject:
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	if req.Action == ActionReject {
		if req.Comment == nil || strings.TrimSpace(*req.Comment) == "" {
			return ErrCommentRequired
		}
	}

	return nil
}
