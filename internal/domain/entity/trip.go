package entity

import (
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

// DeliveryRequests field names. The requesting customer sits under "userID"
// while the driver sits under "driverId"; ratings use yet another casing.
const (
	TripFieldDriverID        = "driverId"
	TripFieldUserID          = "userID"
	TripFieldStatus          = "status"
	TripFieldCreatedAt       = "createdAt"
	TripFieldUpdatedAt       = "updatedAt"
	TripFieldCustomerName    = "customerName"
	TripFieldRecipientName   = "recipientName"
	TripFieldPickupAddress   = "pickupAddress"
	TripFieldDeliveryAddress = "deliveryAddress"
)

// Monetary amount precedence for a trip. Older documents carry "fare", the
// current client writes "amount"; both string and numeric values occur.
var TripAmountFields = []string{"amount", "fare", "totalAmount", "price"}

// Trip lifecycle status buckets. The status enum is open-ended: values
// outside these sets fall through every bucket and only count toward totals.
var (
	activeStatuses = map[string]bool{
		"pending":     true,
		"accepted":    true,
		"picked_up":   true,
		"in_progress": true,
		"started":     true,
		"ongoing":     true,
	}
	completedStatuses = map[string]bool{
		"completed": true,
		"ended":     true,
		"delivered": true,
	}
	cancelledStatuses = map[string]bool{
		"cancelled":             true,
		"cancelled_by_driver":   true,
		"cancelled_by_customer": true,
	}
)

func IsActiveStatus(status string) bool    { return activeStatuses[status] }
func IsCompletedStatus(status string) bool { return completedStatuses[status] }
func IsCancelledStatus(status string) bool { return cancelledStatuses[status] }

type Trip struct {
	ID              string  `json:"id"`
	DriverID        string  `json:"driverId,omitempty"`
	UserID          string  `json:"userID,omitempty"`
	Status          string  `json:"status,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
	Amount          float64 `json:"amount"`
	CustomerName    string  `json:"customerName,omitempty"`
	RecipientName   string  `json:"recipientName,omitempty"`
	PickupAddress   string  `json:"pickupAddress,omitempty"`
	DeliveryAddress string  `json:"deliveryAddress,omitempty"`
}

func TripFromDocument(id string, doc document.Document) Trip {
	return Trip{
		ID:              id,
		DriverID:        numeric.ToString(doc[TripFieldDriverID]),
		UserID:          numeric.ToString(doc[TripFieldUserID]),
		Status:          numeric.ToString(doc[TripFieldStatus]),
		CreatedAt:       numeric.ToString(doc[TripFieldCreatedAt]),
		UpdatedAt:       numeric.ToString(doc[TripFieldUpdatedAt]),
		Amount:          numeric.FirstFloat(doc, TripAmountFields...),
		CustomerName:    numeric.ToString(doc[TripFieldCustomerName]),
		RecipientName:   numeric.ToString(doc[TripFieldRecipientName]),
		PickupAddress:   numeric.ToString(doc[TripFieldPickupAddress]),
		DeliveryAddress: numeric.ToString(doc[TripFieldDeliveryAddress]),
	}
}

// EnrichedTrip is a trip with party names attached at read time. DriverName
// is nil, and omitted from the JSON, only when the trip never referenced a
// driver; a resolved driver with no recorded name still serializes as "".
type EnrichedTrip struct {
	Trip
	DriverName       *string `json:"driver_name,omitempty"`
	CustomerFullName string  `json:"customer_name,omitempty"`
}
