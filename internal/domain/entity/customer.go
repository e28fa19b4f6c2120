package entity

import (
	"strings"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

const (
	CustomerFieldCustomerID  = "customerId"
	CustomerFieldFirstName   = "firstName"
	CustomerFieldLastName    = "lastName"
	CustomerFieldEmail       = "email"
	CustomerFieldPhoneNumber = "phoneNumber"
	CustomerFieldProfilePic  = "profilePic"
	CustomerFieldGeoPosition = "geoPosition"
	CustomerFieldDateCreated = "dateCreated"
)

type Customer struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customerId,omitempty"`
	FirstName   string  `json:"firstName,omitempty"`
	LastName    string  `json:"lastName,omitempty"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	ProfilePic  string  `json:"profilePic,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	DateCreated string  `json:"dateCreated,omitempty"`
}

func CustomerFromDocument(id string, doc document.Document) Customer {
	c := Customer{
		ID:          id,
		CustomerID:  numeric.ToString(doc[CustomerFieldCustomerID]),
		FirstName:   numeric.ToString(doc[CustomerFieldFirstName]),
		LastName:    numeric.ToString(doc[CustomerFieldLastName]),
		Email:       numeric.ToString(doc[CustomerFieldEmail]),
		PhoneNumber: numeric.ToString(doc[CustomerFieldPhoneNumber]),
		ProfilePic:  numeric.ToString(doc[CustomerFieldProfilePic]),
		DateCreated: numeric.ToString(doc[CustomerFieldDateCreated]),
	}

	if geo, ok := doc[CustomerFieldGeoPosition].(map[string]interface{}); ok {
		c.Latitude = numeric.ToFloat(geo[geoFieldLatitude])
		c.Longitude = numeric.ToFloat(geo[geoFieldLongitude])
	}

	return c
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CustomerLiveStatus carries only the location snapshot; customers have no
// current-trip projection on the dashboard.
type CustomerLiveStatus struct {
	CustomerID string   `json:"customerId"`
	Location   Location `json:"location"`
}
