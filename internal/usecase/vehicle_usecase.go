package usecase

import (
	"context"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/pkg/logger"
)

type VehicleUseCase struct {
	store document.Store
}

func NewVehicleUseCase(store document.Store) *VehicleUseCase {
	return &VehicleUseCase{store: store}
}

// VehicleManagementView is the vehicle listing with owner names, derived
// statuses and the status breakdown the page header shows.
type VehicleManagementView struct {
	Vehicles      []entity.EnrichedVehicle `json:"vehicles"`
	PendingCount  int                      `json:"pending_count"`
	ApprovedCount int                      `json:"approved_count"`
	ActiveCount   int                      `json:"active_count"`
}

func (uc *VehicleUseCase) ManagementView(ctx context.Context) VehicleManagementView {
	view := VehicleManagementView{Vehicles: []entity.EnrichedVehicle{}}

	records, err := uc.store.List(ctx, document.CollectionVehicleDetails)
	if err != nil {
		logger.LogStoreFault(document.CollectionVehicleDetails, "list", err)
		return view
	}

	for _, rec := range records {
		vehicle := entity.VehicleFromDocument(rec.ID, rec.Data)
		enriched := enrichVehicle(ctx, uc.store, vehicle)

		switch enriched.Status {
		case entity.VehicleStatusPending:
			view.PendingCount++
		case entity.VehicleStatusActive:
			view.ActiveCount++
		case entity.VehicleStatusApproved:
			view.ApprovedCount++
		}

		view.Vehicles = append(view.Vehicles, enriched)
	}

	return view
}

func (uc *VehicleUseCase) GetVehicleByID(ctx context.Context, id string) *entity.Vehicle {
	rec, err := uc.store.Get(ctx, document.CollectionVehicleDetails, id)
	if err != nil {
		return nil
	}
	vehicle := entity.VehicleFromDocument(rec.ID, rec.Data)
	return &vehicle
}

func (uc *VehicleUseCase) SetApproval(ctx context.Context, id string, approved bool) bool {
	err := uc.store.Update(ctx, document.CollectionVehicleDetails, id,
		document.Document{entity.VehicleFieldIsApproved: approved})
	if err != nil {
		logger.LogStoreFault(document.CollectionVehicleDetails, "update", err)
		return false
	}
	return true
}

func (uc *VehicleUseCase) DeleteVehicle(ctx context.Context, id string) bool {
	if err := uc.store.Delete(ctx, document.CollectionVehicleDetails, id); err != nil {
		logger.LogStoreFault(document.CollectionVehicleDetails, "delete", err)
		return false
	}
	return true
}
