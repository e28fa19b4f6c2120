package usecase

import (
	"context"
	"errors"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/internal/usecase/analytics"
	"github.com/swifttrack/backoffice/pkg/logger"
)

// DriverUseCase reads and mutates driver records and assembles the derived
// driver views. Reads fail soft: a store fault degrades to an empty result so
// the dashboard always renders.
type DriverUseCase struct {
	store document.Store
}

func NewDriverUseCase(store document.Store) *DriverUseCase {
	return &DriverUseCase{store: store}
}

func (uc *DriverUseCase) GetAllDrivers(ctx context.Context) []entity.Driver {
	records, err := uc.store.List(ctx, document.CollectionDrivers)
	if err != nil {
		logger.LogStoreFault(document.CollectionDrivers, "list", err)
		return []entity.Driver{}
	}

	drivers := make([]entity.Driver, 0, len(records))
	for _, rec := range records {
		drivers = append(drivers, entity.DriverFromDocument(rec.ID, rec.Data))
	}
	return drivers
}

func (uc *DriverUseCase) GetDriverByID(ctx context.Context, id string) *entity.Driver {
	driver, err := fetchDriver(ctx, uc.store, id)
	if err != nil {
		if !errors.Is(err, document.ErrNotFound) {
			logger.LogStoreFault(document.CollectionDrivers, "get", err)
		}
		return nil
	}
	return &driver
}

func (uc *DriverUseCase) CreateDriver(ctx context.Context, data document.Document) (string, bool) {
	id, err := uc.store.Create(ctx, document.CollectionDrivers, data)
	if err != nil {
		logger.LogStoreFault(document.CollectionDrivers, "create", err)
		return "", false
	}
	return id, true
}

func (uc *DriverUseCase) UpdateDriver(ctx context.Context, id string, data document.Document) bool {
	if err := uc.store.Update(ctx, document.CollectionDrivers, id, data); err != nil {
		logger.LogStoreFault(document.CollectionDrivers, "update", err)
		return false
	}
	return true
}

// SetApproval flips the approval flag, the single mutation the listing page
// exposes inline.
func (uc *DriverUseCase) SetApproval(ctx context.Context, id string, approved bool) bool {
	return uc.UpdateDriver(ctx, id, document.Document{entity.DriverFieldIsApproved: approved})
}

func (uc *DriverUseCase) DeleteDriver(ctx context.Context, id string) bool {
	if err := uc.store.Delete(ctx, document.CollectionDrivers, id); err != nil {
		logger.LogStoreFault(document.CollectionDrivers, "delete", err)
		return false
	}
	return true
}

// Stats buckets active/inactive on the status field.
func (uc *DriverUseCase) Stats(ctx context.Context) analytics.DriverStats {
	return analytics.ComputeDriverStats(uc.GetAllDrivers(ctx))
}

// OnlineStats buckets active/inactive on the online flag instead; the driver
// listing header counts this way.
func (uc *DriverUseCase) OnlineStats(ctx context.Context) analytics.DriverStats {
	return analytics.ComputeDriverOnlineStats(uc.GetAllDrivers(ctx))
}

// DriverDetail is the detail-page view: the driver plus their uploaded
// documents and registered vehicle.
type DriverDetail struct {
	Driver    entity.Driver     `json:"driver"`
	Documents document.Document `json:"documents,omitempty"`
	Vehicle   *entity.Vehicle   `json:"vehicle,omitempty"`
}

func (uc *DriverUseCase) Detail(ctx context.Context, id string) *DriverDetail {
	driver := uc.GetDriverByID(ctx, id)
	if driver == nil {
		return nil
	}

	detail := &DriverDetail{Driver: *driver}

	if rec, err := uc.store.Get(ctx, document.CollectionDriversDocuments, id); err == nil {
		detail.Documents = rec.Data
	}

	vehicles, err := uc.store.Query(ctx, document.CollectionVehicleDetails,
		map[string]interface{}{entity.VehicleFieldUserID: id}, nil, nil, 1)
	if err != nil {
		logger.LogStoreFault(document.CollectionVehicleDetails, "query", err)
	} else if len(vehicles) > 0 {
		vehicle := entity.VehicleFromDocument(vehicles[0].ID, vehicles[0].Data)
		detail.Vehicle = &vehicle
	}

	return detail
}

// Earnings assembles the driver's earnings report from their trips and stored
// balance. Missing balance documents leave the balance figures at zero.
func (uc *DriverUseCase) Earnings(ctx context.Context, id string) analytics.EarningsReport {
	trips := uc.tripsForDriver(ctx, id)

	var balance *entity.Balance
	if rec, err := uc.store.Get(ctx, document.CollectionDriverBalances, id); err == nil {
		b := entity.BalanceFromDocument(id, rec.Data)
		balance = &b
	}

	return analytics.ComputeEarnings(id, trips, balance)
}

// LiveStatus assembles the point-in-time snapshot for one driver: current
// location and current trip.
//
// Location fallback order: the DriverLocation document, then the position
// embedded on the driver record (only honored while the driver reports
// online), then an all-zero offline sentinel.
func (uc *DriverUseCase) LiveStatus(ctx context.Context, id string) entity.DriverLiveStatus {
	status := entity.DriverLiveStatus{DriverID: id}

	if rec, err := uc.store.Get(ctx, document.CollectionDriverLocation, id); err == nil {
		status.Location = entity.LocationFromDocument(rec.Data)
	} else if driver := uc.GetDriverByID(ctx, id); driver != nil && driver.IsDriverOnline {
		status.Location = entity.Location{
			Latitude:  driver.Latitude,
			Longitude: driver.Longitude,
			IsOnline:  true,
		}
	} else {
		status.Location = entity.UnavailableLocation()
	}

	status.CurrentTrip = uc.currentTrip(ctx, id)
	return status
}

// currentTrip picks the most recently created active trip; with no active
// trip it falls back to the most recent trip of any status, and with no trips
// at all the projection carries no trip.
func (uc *DriverUseCase) currentTrip(ctx context.Context, id string) *entity.EnrichedTrip {
	trips := uc.tripsForDriver(ctx, id)
	if len(trips) == 0 {
		return nil
	}

	var active, latest *entity.Trip
	for i := range trips {
		t := &trips[i]
		if latest == nil || t.CreatedAt > latest.CreatedAt {
			latest = t
		}
		if entity.IsActiveStatus(t.Status) && (active == nil || t.CreatedAt > active.CreatedAt) {
			active = t
		}
	}

	chosen := active
	if chosen == nil {
		chosen = latest
	}

	enriched := enrichTrip(ctx, uc.store, *chosen)
	return &enriched
}

func (uc *DriverUseCase) tripsForDriver(ctx context.Context, id string) []entity.Trip {
	records, err := uc.store.Query(ctx, document.CollectionDeliveryRequests,
		map[string]interface{}{entity.TripFieldDriverID: id}, nil, nil, 0)
	if err != nil {
		logger.LogStoreFault(document.CollectionDeliveryRequests, "query", err)
		return nil
	}

	trips := make([]entity.Trip, 0, len(records))
	for _, rec := range records {
		trips = append(trips, entity.TripFromDocument(rec.ID, rec.Data))
	}
	return trips
}
