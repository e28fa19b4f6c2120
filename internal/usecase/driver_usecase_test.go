package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swifttrack/backoffice/internal/adapter/store"
	"github.com/swifttrack/backoffice/internal/domain/document"
)

// faultStore fails every call with a connection-level error.
type faultStore struct{}

func (faultStore) Get(ctx context.Context, collection, id string) (document.Record, error) {
	return document.Record{}, fmt.Errorf("%s: %w", collection, document.ErrUnavailable)
}

func (faultStore) List(ctx context.Context, collection string) ([]document.Record, error) {
	return nil, fmt.Errorf("%s: %w", collection, document.ErrUnavailable)
}

func (faultStore) Query(ctx context.Context, collection string, eq map[string]interface{}, in *document.InFilter, order *document.Order, limit int) ([]document.Record, error) {
	return nil, fmt.Errorf("%s: %w", collection, document.ErrUnavailable)
}

func (faultStore) Create(ctx context.Context, collection string, data document.Document) (string, error) {
	return "", fmt.Errorf("%s: %w", collection, document.ErrUnavailable)
}

func (faultStore) Update(ctx context.Context, collection, id string, data document.Document) error {
	return fmt.Errorf("%s: %w", collection, document.ErrUnavailable)
}

func (faultStore) Delete(ctx context.Context, collection, id string) error {
	return fmt.Errorf("%s: %w", collection, document.ErrUnavailable)
}

func seedDriver(s *store.MemoryStore, id string, doc document.Document) {
	s.Seed(document.CollectionDrivers, id, doc)
}

func TestGetAllDriversInjectsID(t *testing.T) {
	s := store.NewMemoryStore()
	seedDriver(s, "d1", document.Document{"firstName": "Amina", "lastName": "Diallo"})

	drivers := NewDriverUseCase(s).GetAllDrivers(context.Background())
	require.Len(t, drivers, 1)
	assert.Equal(t, "d1", drivers[0].ID)
	assert.Equal(t, "Amina Diallo", drivers[0].FullName())
}

func TestReadsFailSoft(t *testing.T) {
	uc := NewDriverUseCase(faultStore{})
	ctx := context.Background()

	assert.Empty(t, uc.GetAllDrivers(ctx))
	assert.Nil(t, uc.GetDriverByID(ctx, "d1"))

	stats := uc.Stats(ctx)
	assert.Equal(t, 0, stats.TotalDrivers)

	earnings := uc.Earnings(ctx, "d1")
	assert.Equal(t, 0.0, earnings.TotalEarnings)
}

func TestWritesFailToBoolean(t *testing.T) {
	uc := NewDriverUseCase(faultStore{})
	ctx := context.Background()

	_, ok := uc.CreateDriver(ctx, document.Document{"firstName": "x"})
	assert.False(t, ok)
	assert.False(t, uc.UpdateDriver(ctx, "d1", document.Document{"firstName": "y"}))
	assert.False(t, uc.DeleteDriver(ctx, "d1"))
}

func TestCreateThenGetByID(t *testing.T) {
	s := store.NewMemoryStore()
	uc := NewDriverUseCase(s)
	ctx := context.Background()

	id, ok := uc.CreateDriver(ctx, document.Document{"firstName": "Joe", "isApproved": true})
	require.True(t, ok)

	driver := uc.GetDriverByID(ctx, id)
	require.NotNil(t, driver)
	assert.Equal(t, id, driver.ID)
	assert.Equal(t, "Joe", driver.FirstName)
	assert.True(t, driver.IsApproved)
}

func TestStatsVariantsDisagreeByDesign(t *testing.T) {
	s := store.NewMemoryStore()
	seedDriver(s, "d1", document.Document{"status": "active", "isDriverOnline": false})
	seedDriver(s, "d2", document.Document{"status": "inactive", "isDriverOnline": true})
	uc := NewDriverUseCase(s)
	ctx := context.Background()

	byStatus := uc.Stats(ctx)
	byOnline := uc.OnlineStats(ctx)
	assert.Equal(t, 1, byStatus.ActiveDrivers)
	assert.Equal(t, 1, byOnline.ActiveDrivers)
	assert.Equal(t, byStatus.TotalDrivers, byStatus.ActiveDrivers+byStatus.InactiveDrivers)
	assert.Equal(t, byOnline.TotalDrivers, byOnline.ActiveDrivers+byOnline.InactiveDrivers)
}

func TestDetailJoinsDocumentsAndVehicle(t *testing.T) {
	s := store.NewMemoryStore()
	seedDriver(s, "d1", document.Document{"firstName": "Amina"})
	s.Seed(document.CollectionDriversDocuments, "d1", document.Document{"license": "url"})
	s.Seed(document.CollectionVehicleDetails, "v1", document.Document{"userID": "d1", "plateNumber": "KAA 123"})

	detail := NewDriverUseCase(s).Detail(context.Background(), "d1")
	require.NotNil(t, detail)
	assert.Equal(t, "url", detail.Documents["license"])
	require.NotNil(t, detail.Vehicle)
	assert.Equal(t, "KAA 123", detail.Vehicle.PlateNumber)
}

func TestLiveStatusNoTrips(t *testing.T) {
	s := store.NewMemoryStore()
	seedDriver(s, "d1", document.Document{"firstName": "Amina"})

	status := NewDriverUseCase(s).LiveStatus(context.Background(), "d1")
	assert.Nil(t, status.CurrentTrip)
	assert.False(t, status.Location.IsOnline)
	assert.Equal(t, 0.0, status.Location.Latitude)
}

func TestLiveStatusPrefersLocationCollection(t *testing.T) {
	s := store.NewMemoryStore()
	seedDriver(s, "d1", document.Document{
		"isDriverOnline": true,
		"geoPosition":    map[string]interface{}{"latitude": 1.0, "longitude": 2.0},
	})
	s.Seed(document.CollectionDriverLocation, "d1", document.Document{
		"latitude": 3.5, "longitude": 4.5, "isOnline": true, "address": "Market St",
	})

	status := NewDriverUseCase(s).LiveStatus(context.Background(), "d1")
	assert.Equal(t, 3.5, status.Location.Latitude)
	assert.Equal(t, "Market St", status.Location.Address)
}

func TestLiveStatusEmbeddedFallbackRequiresOnline(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	seedDriver(s, "online", document.Document{
		"isDriverOnline": true,
		"geoPosition":    map[string]interface{}{"latitude": 1.0, "longitude": 2.0},
	})
	seedDriver(s, "offline", document.Document{
		"isDriverOnline": false,
		"geoPosition":    map[string]interface{}{"latitude": 1.0, "longitude": 2.0},
	})

	uc := NewDriverUseCase(s)

	onlineStatus := uc.LiveStatus(ctx, "online")
	assert.Equal(t, 1.0, onlineStatus.Location.Latitude)
	assert.True(t, onlineStatus.Location.IsOnline)

	offlineStatus := uc.LiveStatus(ctx, "offline")
	assert.Equal(t, 0.0, offlineStatus.Location.Latitude)
	assert.False(t, offlineStatus.Location.IsOnline)
}

func TestLiveStatusCurrentTripSelection(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	seedDriver(s, "d1", document.Document{"firstName": "Amina"})

	s.Seed(document.CollectionDeliveryRequests, "old-active", document.Document{
		"driverId": "d1", "status": "in_progress", "createdAt": "2025-01-01T00:00:00Z",
	})
	s.Seed(document.CollectionDeliveryRequests, "new-active", document.Document{
		"driverId": "d1", "status": "pending", "createdAt": "2025-02-01T00:00:00Z",
	})
	s.Seed(document.CollectionDeliveryRequests, "newest-done", document.Document{
		"driverId": "d1", "status": "completed", "createdAt": "2025-03-01T00:00:00Z",
	})

	uc := NewDriverUseCase(s)

	status := uc.LiveStatus(ctx, "d1")
	require.NotNil(t, status.CurrentTrip)
	// The newest active trip wins even when a completed trip is newer still.
	assert.Equal(t, "new-active", status.CurrentTrip.ID)

	// With no active trips left, the most recent of any status is current.
	require.NoError(t, s.Update(ctx, document.CollectionDeliveryRequests, "old-active",
		document.Document{"status": "cancelled"}))
	require.NoError(t, s.Update(ctx, document.CollectionDeliveryRequests, "new-active",
		document.Document{"status": "cancelled"}))

	status = uc.LiveStatus(ctx, "d1")
	require.NotNil(t, status.CurrentTrip)
	assert.Equal(t, "newest-done", status.CurrentTrip.ID)
}

func TestEarningsFromStore(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	seedDriver(s, "d1", document.Document{"firstName": "Amina"})

	// Amounts arrive as string, number and under a legacy field name.
	s.Seed(document.CollectionDeliveryRequests, "t1", document.Document{
		"driverId": "d1", "status": "completed", "amount": "50",
	})
	s.Seed(document.CollectionDeliveryRequests, "t2", document.Document{
		"driverId": "d1", "status": "delivered", "fare": 30,
	})
	s.Seed(document.CollectionDeliveryRequests, "t3", document.Document{
		"driverId": "d1", "status": "cancelled", "amount": 1000,
	})
	s.Seed(document.CollectionDriverBalances, "d1", document.Document{
		"currentBalance": 20, "pendingAmount": 5, "totalEarned": 80,
	})

	report := NewDriverUseCase(s).Earnings(ctx, "d1")
	assert.Equal(t, 80.0, report.TotalEarnings)
	assert.Equal(t, 2, report.TotalTrips)
	assert.Equal(t, 40.0, report.AvgEarningsTrip)
	assert.Equal(t, 20.0, report.CurrentBalance)
	assert.Equal(t, 60.0, report.TotalWithdrawals)
}
