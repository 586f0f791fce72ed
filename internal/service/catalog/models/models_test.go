package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	"github.com/faithworks/FWS-ReservationService/pkg/ptr"
)

func TestFromDomainFacility(t *testing.T) {
	facility := &domain.Facility{
		ID:               1,
		Name:             "Главный зал",
		Building:         "A",
		Floor:            ptr.Ptr("2"),
		Capacity:         200,
		Amenities:        []string{"projector", "piano"},
		SetupMinutes:     30,
		CleanupMinutes:   15,
		RequiresApproval: true,
		Description:      "Зал для богослужений",
	}

	resp := FromDomainFacility(facility)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Главный зал", resp.Name)
	require.NotNil(t, resp.Floor)
	assert.Equal(t, "2", *resp.Floor)
	assert.Equal(t, "Зал для богослужений", resp.Description)
	assert.True(t, resp.RequiresApproval)
}

func TestFromDomainEquipment(t *testing.T) {
	item := &domain.EquipmentItem{
		ID:                2,
		Name:              "Стул складной",
		Category:          "furniture",
		Quantity:          200,
		AvailableQuantity: 150,
		Description:       "Складные стулья для мероприятий",
	}

	resp := FromDomainEquipment(item)

	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, "furniture", resp.Category)
	assert.Equal(t, 150, resp.AvailableQuantity)
	assert.Equal(t, "Складные стулья для мероприятий", resp.Description)
}

func TestFromDomainFacilities_PreservesOrderAndTotal(t *testing.T) {
	resp := FromDomainFacilities([]*domain.Facility{
		{ID: 1, Name: "Главный зал"},
		{ID: 2, Name: "Малый зал"},
	})

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Главный зал", resp.Facilities[0].Name)
	assert.Equal(t, "Малый зал", resp.Facilities[1].Name)
}
