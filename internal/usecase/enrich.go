package usecase

import (
	"context"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
)

// Read-time joins. Every lookup here is best-effort: a failed join fills a
// placeholder or leaves the field out, and never aborts the record it was
// decorating or any of its siblings.

func fetchDriver(ctx context.Context, store document.Store, id string) (entity.Driver, error) {
	rec, err := store.Get(ctx, document.CollectionDrivers, id)
	if err != nil {
		return entity.Driver{}, err
	}
	return entity.DriverFromDocument(rec.ID, rec.Data), nil
}

func fetchCustomer(ctx context.Context, store document.Store, id string) (entity.Customer, error) {
	rec, err := store.Get(ctx, document.CollectionCustomers, id)
	if err != nil {
		return entity.Customer{}, err
	}
	return entity.CustomerFromDocument(rec.ID, rec.Data), nil
}

// enrichTrip attaches driver and customer names to a trip.
func enrichTrip(ctx context.Context, store document.Store, trip entity.Trip) entity.EnrichedTrip {
	enriched := entity.EnrichedTrip{Trip: trip}

	// No driver id on the trip means the job was never assigned; the field is
	// omitted rather than filled with a placeholder.
	if trip.DriverID != "" {
		name := "Driver Not Found"
		if driver, err := fetchDriver(ctx, store, trip.DriverID); err == nil {
			name = driver.FullName()
		}
		enriched.DriverName = &name
	}

	enriched.CustomerFullName = resolveTripCustomerName(ctx, store, trip)

	return enriched
}

func resolveTripCustomerName(ctx context.Context, store document.Store, trip entity.Trip) string {
	customerMissing := false
	if trip.UserID != "" {
		customer, err := fetchCustomer(ctx, store, trip.UserID)
		if err == nil {
			if name := customer.FullName(); name != "" {
				return name
			}
		} else {
			customerMissing = true
		}
	}

	// Denormalized names stored on the trip itself.
	if trip.CustomerName != "" {
		return trip.CustomerName
	}
	if trip.RecipientName != "" {
		return trip.RecipientName
	}

	if customerMissing {
		return "Customer Not Found"
	}
	return "Unknown Customer"
}

// enrichRating attaches the rating customer's name and infers the related
// trip. Ratings carry no trip reference, so the trip is guessed from an
// unordered (driver, customer) filter match; whichever trip the store returns
// first wins, and with no match at all the link fields stay empty.
func enrichRating(ctx context.Context, store document.Store, rating entity.Rating) entity.EnrichedRating {
	enriched := entity.EnrichedRating{Rating: rating}

	if rating.CustomerID != "" {
		if customer, err := fetchCustomer(ctx, store, rating.CustomerID); err == nil {
			enriched.CustomerName = customer.FullName()
		} else {
			enriched.CustomerName = "Unknown Customer"
		}
	}

	if rating.DriverID == "" {
		return enriched
	}

	filters := map[string]interface{}{entity.TripFieldDriverID: rating.DriverID}
	if rating.CustomerID != "" {
		filters[entity.TripFieldUserID] = rating.CustomerID
	}
	trips, err := store.Query(ctx, document.CollectionDeliveryRequests, filters, nil, nil, 1)
	if err != nil || len(trips) == 0 {
		trips, err = store.Query(ctx, document.CollectionDeliveryRequests,
			map[string]interface{}{entity.TripFieldDriverID: rating.DriverID}, nil, nil, 1)
		if err != nil || len(trips) == 0 {
			return enriched
		}
	}

	trip := entity.TripFromDocument(trips[0].ID, trips[0].Data)
	enriched.TripID = trip.ID
	enriched.TripStatus = trip.Status
	return enriched
}

// enrichVehicle resolves the owning driver and derives the management-page
// status: unapproved vehicles are pending, approved ones are active while
// their driver is online.
func enrichVehicle(ctx context.Context, store document.Store, vehicle entity.Vehicle) entity.EnrichedVehicle {
	enriched := entity.EnrichedVehicle{Vehicle: vehicle, DriverID: vehicle.UserID}

	var driver *entity.Driver
	if vehicle.UserID != "" {
		if d, err := fetchDriver(ctx, store, vehicle.UserID); err == nil {
			driver = &d
		}
	}

	if driver != nil {
		enriched.DriverName = driver.DisplayName()
	} else {
		enriched.DriverName = "Unknown Driver"
	}

	switch {
	case !vehicle.IsApproved:
		enriched.Status = entity.VehicleStatusPending
	case driver != nil && driver.IsDriverOnline:
		enriched.Status = entity.VehicleStatusActive
	default:
		enriched.Status = entity.VehicleStatusApproved
	}

	return enriched
}

// enrichPaymentSetting resolves the vehicle type for display; an unresolvable
// type id is echoed back as the name so the row still renders.
func enrichPaymentSetting(ctx context.Context, store document.Store, setting entity.PaymentSetting) entity.EnrichedPaymentSetting {
	enriched := entity.EnrichedPaymentSetting{PaymentSetting: setting}

	if setting.VehicleTypeID == "" {
		return enriched
	}

	rec, err := store.Get(ctx, document.CollectionVehicleTypes, setting.VehicleTypeID)
	if err != nil {
		enriched.VehicleTypeName = setting.VehicleTypeID
		return enriched
	}

	vt := entity.VehicleTypeFromDocument(rec.ID, rec.Data)
	enriched.VehicleTypeName = vt.Name
	enriched.VehicleTypeIcon = vt.Icon
	if enriched.VehicleTypeName == "" {
		enriched.VehicleTypeName = setting.VehicleTypeID
	}
	return enriched
}
