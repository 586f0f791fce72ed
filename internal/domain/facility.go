package domain

import "time"

// Facility represents a bookable room or space
type Facility struct {
	ID               int64
	Name             string
	Building         string
	Floor            *string // NULL = building has no floor designations
	Capacity         int
	Amenities        []string
	SetupMinutes     int
	CleanupMinutes   int
	RequiresApproval bool
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasAmenity returns true if the facility lists the given amenity
func (f *Facility) HasAmenity(amenity string) bool {
	for _, a := range f.Amenities {
		if a == amenity {
			return true
		}
	}
	return false
}

// FacilityFilter фильтр для поиска помещений в каталоге
type FacilityFilter struct {
	Building    *string // Фильтр по зданию (опционально)
	MinCapacity *int    // Минимальная вместимость (опционально)
	Amenity     *string // Обязательное удобство (опционально)
}
