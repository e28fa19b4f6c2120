package entity

import (
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

// DriverLocation and CustomerLocation share a shape and are keyed by the
// owning driver/customer id.
const (
	LocationFieldLatitude  = "latitude"
	LocationFieldLongitude = "longitude"
	LocationFieldAddress   = "address"
	LocationFieldUpdatedAt = "updatedAt"
	LocationFieldIsOnline  = "isOnline"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
	IsOnline  bool    `json:"isOnline"`
}

func LocationFromDocument(doc document.Document) Location {
	return Location{
		Latitude:  numeric.ToFloat(doc[LocationFieldLatitude]),
		Longitude: numeric.ToFloat(doc[LocationFieldLongitude]),
		Address:   numeric.ToString(doc[LocationFieldAddress]),
		UpdatedAt: numeric.ToString(doc[LocationFieldUpdatedAt]),
		IsOnline:  numeric.ToBool(doc[LocationFieldIsOnline]),
	}
}

// UnavailableLocation is the sentinel reported when neither the location
// collection nor the owner record yields a usable position.
func UnavailableLocation() Location {
	return Location{Address: "Unavailable", IsOnline: false}
}
