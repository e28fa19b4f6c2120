package usecase

import (
	"context"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/internal/usecase/analytics"
	"github.com/swifttrack/backoffice/pkg/logger"
)

// TripUseCase serves the orders page: delivery requests decorated with party
// names, plus the aggregate trip figures.
type TripUseCase struct {
	store document.Store
}

func NewTripUseCase(store document.Store) *TripUseCase {
	return &TripUseCase{store: store}
}

func (uc *TripUseCase) getAllTrips(ctx context.Context) []entity.Trip {
	records, err := uc.store.List(ctx, document.CollectionDeliveryRequests)
	if err != nil {
		logger.LogStoreFault(document.CollectionDeliveryRequests, "list", err)
		return []entity.Trip{}
	}

	trips := make([]entity.Trip, 0, len(records))
	for _, rec := range records {
		trips = append(trips, entity.TripFromDocument(rec.ID, rec.Data))
	}
	return trips
}

// OrdersView is the orders listing plus its aggregates, computed from the
// same trip snapshot so the numbers always match the rows.
type OrdersView struct {
	Orders    []entity.EnrichedTrip   `json:"orders"`
	Analytics analytics.TripAnalytics `json:"analytics"`
}

func (uc *TripUseCase) OrdersView(ctx context.Context) OrdersView {
	trips := uc.getAllTrips(ctx)

	view := OrdersView{
		Orders:    make([]entity.EnrichedTrip, 0, len(trips)),
		Analytics: analytics.ComputeTripAnalytics(trips),
	}
	for _, trip := range trips {
		view.Orders = append(view.Orders, enrichTrip(ctx, uc.store, trip))
	}
	return view
}

func (uc *TripUseCase) GetTripByID(ctx context.Context, id string) *entity.EnrichedTrip {
	rec, err := uc.store.Get(ctx, document.CollectionDeliveryRequests, id)
	if err != nil {
		return nil
	}
	enriched := enrichTrip(ctx, uc.store, entity.TripFromDocument(rec.ID, rec.Data))
	return &enriched
}
