package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swifttrack/backoffice/internal/adapter/store"
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
)

func TestEnrichTripDriverName(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.Seed(document.CollectionDrivers, "d1", document.Document{"firstName": "Amina", "lastName": "Diallo"})

	resolved := enrichTrip(ctx, s, entity.Trip{ID: "t1", DriverID: "d1"})
	require.NotNil(t, resolved.DriverName)
	assert.Equal(t, "Amina Diallo", *resolved.DriverName)

	missing := enrichTrip(ctx, s, entity.Trip{ID: "t2", DriverID: "ghost"})
	require.NotNil(t, missing.DriverName)
	assert.Equal(t, "Driver Not Found", *missing.DriverName)

	unassigned := enrichTrip(ctx, s, entity.Trip{ID: "t3"})
	assert.Nil(t, unassigned.DriverName)
}

func TestEnrichTripNamelessDriverStaysDistinctFromUnassigned(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.Seed(document.CollectionDrivers, "anon", document.Document{"phoneNumber": "+220000"})

	// A resolved driver with no name parts yields an empty name, not an
	// omitted field like an unassigned trip.
	nameless := enrichTrip(ctx, s, entity.Trip{ID: "t1", DriverID: "anon"})
	require.NotNil(t, nameless.DriverName)
	assert.Equal(t, "", *nameless.DriverName)

	unassigned := enrichTrip(ctx, s, entity.Trip{ID: "t2"})
	assert.Nil(t, unassigned.DriverName)
}

func TestEnrichTripCustomerNameFallbacks(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.Seed(document.CollectionCustomers, "c1", document.Document{"firstName": "Fatou", "lastName": "Sow"})

	linked := enrichTrip(ctx, s, entity.Trip{UserID: "c1"})
	assert.Equal(t, "Fatou Sow", linked.CustomerFullName)

	denormalized := enrichTrip(ctx, s, entity.Trip{CustomerName: "Walk-in"})
	assert.Equal(t, "Walk-in", denormalized.CustomerFullName)

	recipient := enrichTrip(ctx, s, entity.Trip{RecipientName: "Front Desk"})
	assert.Equal(t, "Front Desk", recipient.CustomerFullName)

	// Customer id present but unresolvable, and no denormalized names.
	broken := enrichTrip(ctx, s, entity.Trip{UserID: "ghost"})
	assert.Equal(t, "Customer Not Found", broken.CustomerFullName)

	// No customer id at all.
	anonymous := enrichTrip(ctx, s, entity.Trip{})
	assert.Equal(t, "Unknown Customer", anonymous.CustomerFullName)
}

func TestEnrichRatingInferredTrip(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.Seed(document.CollectionCustomers, "c1", document.Document{"firstName": "Fatou"})
	s.Seed(document.CollectionDeliveryRequests, "t1", document.Document{
		"driverId": "d1", "userID": "c1", "status": "completed",
	})
	s.Seed(document.CollectionDeliveryRequests, "t2", document.Document{
		"driverId": "d1", "userID": "other", "status": "completed",
	})

	rating := entity.Rating{DriverID: "d1", CustomerID: "c1"}
	enriched := enrichRating(ctx, s, rating)
	assert.Equal(t, "Fatou", enriched.CustomerName)
	assert.Equal(t, "t1", enriched.TripID)
	assert.Equal(t, "completed", enriched.TripStatus)
}

func TestEnrichRatingFallsBackToAnyDriverTrip(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.Seed(document.CollectionDeliveryRequests, "t1", document.Document{
		"driverId": "d1", "userID": "someone", "status": "ended",
	})

	enriched := enrichRating(ctx, s, entity.Rating{DriverID: "d1", CustomerID: "no-trips"})
	assert.Equal(t, "t1", enriched.TripID)
	// The customer lookup failed; the placeholder still renders.
	assert.Equal(t, "Unknown Customer", enriched.CustomerName)
}

func TestEnrichRatingOmitsLinkWhenNothingMatches(t *testing.T) {
	s := store.NewMemoryStore()

	enriched := enrichRating(context.Background(), s, entity.Rating{DriverID: "d1", CustomerID: "c1"})
	assert.Empty(t, enriched.TripID)
	assert.Empty(t, enriched.TripStatus)
}

func TestEnrichVehicleStatusDerivation(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.Seed(document.CollectionDrivers, "online", document.Document{"firstName": "A", "isDriverOnline": true})
	s.Seed(document.CollectionDrivers, "offline", document.Document{"firstName": "B", "isDriverOnline": false})

	pending := enrichVehicle(ctx, s, entity.Vehicle{UserID: "online", IsApproved: false})
	assert.Equal(t, entity.VehicleStatusPending, pending.Status)

	active := enrichVehicle(ctx, s, entity.Vehicle{UserID: "online", IsApproved: true})
	assert.Equal(t, entity.VehicleStatusActive, active.Status)

	approved := enrichVehicle(ctx, s, entity.Vehicle{UserID: "offline", IsApproved: true})
	assert.Equal(t, entity.VehicleStatusApproved, approved.Status)

	orphan := enrichVehicle(ctx, s, entity.Vehicle{UserID: "ghost", IsApproved: true})
	assert.Equal(t, "Unknown Driver", orphan.DriverName)
	assert.Equal(t, entity.VehicleStatusApproved, orphan.Status)
}

func TestEnrichPaymentSettingEchoesRawIDOnFailure(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.Seed(document.CollectionVehicleTypes, "vt1", document.Document{"name": "Motorbike", "icon": "bike.png"})

	resolved := enrichPaymentSetting(ctx, s, entity.PaymentSetting{VehicleTypeID: "vt1"})
	assert.Equal(t, "Motorbike", resolved.VehicleTypeName)
	assert.Equal(t, "bike.png", resolved.VehicleTypeIcon)

	unresolved := enrichPaymentSetting(ctx, s, entity.PaymentSetting{VehicleTypeID: "ghost"})
	assert.Equal(t, "ghost", unresolved.VehicleTypeName)
}

func TestEnrichmentIsolatedPerRecord(t *testing.T) {
	// One trip with a broken driver reference must not poison its siblings.
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.Seed(document.CollectionDrivers, "d1", document.Document{"firstName": "Amina"})
	s.Seed(document.CollectionDeliveryRequests, "good", document.Document{
		"driverId": "d1", "status": "completed", "amount": 10,
	})
	s.Seed(document.CollectionDeliveryRequests, "broken", document.Document{
		"driverId": "ghost", "status": "completed", "amount": 10,
	})

	view := NewTripUseCase(s).OrdersView(ctx)
	require.Len(t, view.Orders, 2)

	names := map[string]string{}
	for _, o := range view.Orders {
		require.NotNil(t, o.DriverName)
		names[o.ID] = *o.DriverName
	}
	assert.Equal(t, "Amina", names["good"])
	assert.Equal(t, "Driver Not Found", names["broken"])
}
