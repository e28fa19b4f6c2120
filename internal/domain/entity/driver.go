package entity

import (
	"strings"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

// Field names in the Drivers collection. Kept as constants because casing is
// inconsistent across collections and mismatches are silent against a
// schema-less store.
const (
	DriverFieldDriversID   = "driversId"
	DriverFieldFirstName   = "firstName"
	DriverFieldLastName    = "lastName"
	DriverFieldEmail       = "email"
	DriverFieldPhoneNumber = "phoneNumber"
	DriverFieldProfilePic  = "profilePic"
	DriverFieldStatus      = "status"
	DriverFieldIsApproved  = "isApproved"
	DriverFieldIsOnline    = "isDriverOnline"
	DriverFieldUserToken   = "userToken"
	DriverFieldGeoPosition = "geoPosition"
	DriverFieldDateCreated = "dateCreated"

	geoFieldLatitude  = "latitude"
	geoFieldLongitude = "longitude"
)

type Driver struct {
	ID             string  `json:"id"`
	DriversID      string  `json:"driversId,omitempty"`
	FirstName      string  `json:"firstName,omitempty"`
	LastName       string  `json:"lastName,omitempty"`
	Email          string  `json:"email,omitempty"`
	PhoneNumber    string  `json:"phoneNumber,omitempty"`
	ProfilePic     string  `json:"profilePic,omitempty"`
	Status         string  `json:"status,omitempty"`
	IsApproved     bool    `json:"isApproved"`
	IsDriverOnline bool    `json:"isDriverOnline"`
	UserToken      string  `json:"-"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
	DateCreated    string  `json:"dateCreated,omitempty"`
}

func DriverFromDocument(id string, doc document.Document) Driver {
	d := Driver{
		ID:             id,
		DriversID:      numeric.ToString(doc[DriverFieldDriversID]),
		FirstName:      numeric.ToString(doc[DriverFieldFirstName]),
		LastName:       numeric.ToString(doc[DriverFieldLastName]),
		Email:          numeric.ToString(doc[DriverFieldEmail]),
		PhoneNumber:    numeric.ToString(doc[DriverFieldPhoneNumber]),
		ProfilePic:     numeric.ToString(doc[DriverFieldProfilePic]),
		Status:         numeric.ToString(doc[DriverFieldStatus]),
		IsApproved:     numeric.ToBool(doc[DriverFieldIsApproved]),
		IsDriverOnline: numeric.ToBool(doc[DriverFieldIsOnline]),
		UserToken:      numeric.ToString(doc[DriverFieldUserToken]),
		DateCreated:    numeric.ToString(doc[DriverFieldDateCreated]),
	}

	if geo, ok := doc[DriverFieldGeoPosition].(map[string]interface{}); ok {
		d.Latitude = numeric.ToFloat(geo[geoFieldLatitude])
		d.Longitude = numeric.ToFloat(geo[geoFieldLongitude])
	}

	return d
}

// FullName joins the name parts and trims; both parts are optional so the
// result may be empty. Detail pages render the empty string as-is.
func (d Driver) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// DisplayName is the listing-page variant: a driver with no name parts shows
// as "Unknown Driver" instead of a blank cell.
func (d Driver) DisplayName() string {
	name := d.FullName()
	if name == "" {
		return "Unknown Driver"
	}
	return name
}

// DriverLiveStatus is the point-in-time snapshot assembled for a single
// driver: where they are plus what they are doing right now.
type DriverLiveStatus struct {
	DriverID    string        `json:"driverId"`
	Location    Location      `json:"location"`
	CurrentTrip *EnrichedTrip `json:"currentTrip"`
}
