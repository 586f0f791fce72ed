package request_equipment

import (
	"fmt"
	"strings"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// validateRequest валидирует корзину до обращения к хранилищу.
// Проверка доступности - отдельный шаг внутри транзакции.
func validateRequest(req *Request) error {
	if req.RequestedBy <= 0 {
		return fmt.Errorf("%w: requestedBy must be positive", ErrInvalidInput)
	}

	title := strings.TrimSpace(req.EventTitle)
	if title == "" {
		return fmt.Errorf("%w: eventTitle is required", ErrInvalidInput)
	}
	if len(title) > domain.MaxEventTitleLength {
		return fmt.Errorf("%w: eventTitle exceeds %d characters", ErrInvalidInput, domain.MaxEventTitleLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}
	if len(req.Items) > domain.MaxCartLines {
		return fmt.Errorf("%w: cart exceeds %d lines", ErrInvalidInput, domain.MaxCartLines)
	}

	seen := make(map[int64]struct{}, len(req.Items))
	for _, line := range req.Items {
		if line.EquipmentID <= 0 {
			return fmt.Errorf("%w: equipmentId must be positive", ErrInvalidInput)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive for equipment id=%d", ErrInvalidInput, line.EquipmentID)
		}
		if line.Quantity > domain.MaxAllocationQuantity {
			return fmt.Errorf("%w: quantity exceeds %d for equipment id=%d", ErrInvalidInput, domain.MaxAllocationQuantity, line.EquipmentID)
		}
		if _, ok := seen[line.EquipmentID]; ok {
			return fmt.Errorf("%w: equipment id=%d", ErrDuplicateLine, line.EquipmentID)
		}
		seen[line.EquipmentID] = struct{}{}
	}

	return nil
}
