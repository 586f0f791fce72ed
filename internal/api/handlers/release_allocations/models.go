package release_allocations

import (
	releaseAllocations "github.com/faithworks/FWS-ReservationService/internal/usecase/release_allocations"
)

// ReleaseResponse HTTP response model
type ReleaseResponse struct {
	RequestID       int64  `json:"requestId"`
	Status          string `json:"status"`
	AlreadyReleased bool   `json:"alreadyReleased"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *releaseAllocations.Response) *ReleaseResponse {
	return &ReleaseResponse{
		RequestID:       resp.RequestID,
		Status:          resp.Status,
		AlreadyReleased: resp.AlreadyReleased,
	}
}
