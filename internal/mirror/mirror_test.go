package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
)

func TestDriverModelMapping(t *testing.T) {
	driver := entity.DriverFromDocument("d1", document.Document{
		"firstName":      "Amina",
		"lastName":       "Diallo",
		"email":          "amina@example.com",
		"isApproved":     true,
		"isDriverOnline": false,
		"geoPosition":    map[string]interface{}{"latitude": 1.25, "longitude": 36.8},
		"dateCreated":    "2025-01-01T00:00:00Z",
	})

	model := DriverModel(driver)
	assert.Equal(t, "d1", model.StoreID)
	assert.Equal(t, "Amina", model.FirstName)
	assert.True(t, model.IsApproved)
	assert.Equal(t, 1.25, model.Latitude)
	assert.Equal(t, "2025-01-01T00:00:00Z", model.DateCreated)
}

func TestOrderModelMapping(t *testing.T) {
	trip := entity.TripFromDocument("t1", document.Document{
		"driverId": "d1",
		"userID":   "c1",
		"status":   "completed",
		"fare":     "75.50",
	})

	model := OrderModel(trip)
	assert.Equal(t, "t1", model.StoreID)
	assert.Equal(t, "d1", model.DriverStoreID)
	assert.Equal(t, "c1", model.CustomerStoreID)
	assert.Equal(t, 75.50, model.Amount)
}
