package entity

import (
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

// VehicleDetails references its owning driver through "userID" while trips
// use "driverId" for the same relationship. Existing data, not a choice.
const (
	VehicleFieldUserID      = "userID"
	VehicleFieldBrand       = "brand"
	VehicleFieldModel       = "model"
	VehicleFieldPlateNumber = "plateNumber"
	VehicleFieldColor       = "color"
	VehicleFieldIsApproved  = "isApproved"

	VehicleTypeFieldName = "name"
	VehicleTypeFieldIcon = "icon"
)

// Derived vehicle statuses shown on the management page.
const (
	VehicleStatusPending  = "Pending Approval"
	VehicleStatusApproved = "Approved"
	VehicleStatusActive   = "Active"
)

type Vehicle struct {
	ID          string `json:"id"`
	UserID      string `json:"userID,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	PlateNumber string `json:"plateNumber,omitempty"`
	Color       string `json:"color,omitempty"`
	IsApproved  bool   `json:"isApproved"`
}

func VehicleFromDocument(id string, doc document.Document) Vehicle {
	return Vehicle{
		ID:          id,
		UserID:      numeric.ToString(doc[VehicleFieldUserID]),
		Brand:       numeric.ToString(doc[VehicleFieldBrand]),
		Model:       numeric.ToString(doc[VehicleFieldModel]),
		PlateNumber: numeric.ToString(doc[VehicleFieldPlateNumber]),
		Color:       numeric.ToString(doc[VehicleFieldColor]),
		IsApproved:  numeric.ToBool(doc[VehicleFieldIsApproved]),
	}
}

// EnrichedVehicle is a vehicle with its owner's name and a derived status
// attached at read time.
type EnrichedVehicle struct {
	Vehicle
	DriverName string `json:"driver_name"`
	DriverID   string `json:"driver_id,omitempty"`
	Status     string `json:"status"`
}

type VehicleType struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Icon string `json:"icon,omitempty"`
}

func VehicleTypeFromDocument(id string, doc document.Document) VehicleType {
	return VehicleType{
		ID:   id,
		Name: numeric.ToString(doc[VehicleTypeFieldName]),
		Icon: numeric.ToString(doc[VehicleTypeFieldIcon]),
	}
}
