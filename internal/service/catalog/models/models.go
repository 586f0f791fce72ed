package models

import (
	"time"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// Request модели

// ListFacilitiesRequest запрос на получение списка помещений
type ListFacilitiesRequest struct {
	Building    *string `json:"building,omitempty"`    // Фильтр по корпусу (опционально)
	MinCapacity *int    `json:"minCapacity,omitempty"` // Минимальная вместимость (опционально)
	Amenity     *string `json:"amenity,omitempty"`     // Обязательное оснащение (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListFacilitiesRequest) ToDomainFilter() domain.FacilityFilter {
	return domain.FacilityFilter{
		Building:    r.Building,
		MinCapacity: r.MinCapacity,
		Amenity:     r.Amenity,
	}
}

// ListEquipmentRequest запрос на получение списка инвентаря
type ListEquipmentRequest struct {
	Category *string `json:"category,omitempty"` // Фильтр по категории (опционально)
}

// Response модели

// FacilityResponse помещение в ответе API
type FacilityResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Building         string   `json:"building"`
	Floor            *string  `json:"floor,omitempty"`
	Capacity         int      `json:"capacity"`
	Amenities        []string `json:"amenities"`
	SetupMinutes     int      `json:"setupMinutes"`
	CleanupMinutes   int      `json:"cleanupMinutes"`
	RequiresApproval bool     `json:"requiresApproval"`
	Description      string   `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FacilityListResponse список помещений
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Total      int                `json:"total"`
}

// EquipmentResponse позиция инвентаря в ответе API
type EquipmentResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Quantity          int    `json:"quantity"`
	AvailableQuantity int    `json:"availableQuantity"`
	Description       string `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EquipmentListResponse список инвентаря
type EquipmentListResponse struct {
	Items []EquipmentResponse `json:"items"`
	Total int                 `json:"total"`
}

// FromDomainFacility конвертирует domain модель в response
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:               f.ID,
		Name:             f.Name,
		Building:         f.Building,
		Floor:            f.Floor,
		Capacity:         f.Capacity,
		Amenities:        f.Amenities,
		SetupMinutes:     f.SetupMinutes,
		CleanupMinutes:   f.CleanupMinutes,
		RequiresApproval: f.RequiresApproval,
		Description:      f.Description,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

// FromDomainFacilities конвертирует список domain моделей в response
func FromDomainFacilities(facilities []*domain.Facility) *FacilityListResponse {
	result := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		result = append(result, *FromDomainFacility(f))
	}

	return &FacilityListResponse{
		Facilities: result,
		Total:      len(result),
	}
}

// FromDomainEquipment конвертирует domain модель в response
func FromDomainEquipment(e *domain.EquipmentItem) *EquipmentResponse {
	return &EquipmentResponse{
		ID:                e.ID,
		Name:              e.Name,
		Category:          e.Category,
		Quantity:          e.Quantity,
		AvailableQuantity: e.AvailableQuantity,
		Description:       e.Description,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// FromDomainEquipmentList конвертирует список domain моделей в response
func FromDomainEquipmentList(items []*domain.EquipmentItem) *EquipmentListResponse {
	result := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		result = append(result, *FromDomainEquipment(e))
	}

	return &EquipmentListResponse{
		Items: result,
		Total: len(result),
	}
}
