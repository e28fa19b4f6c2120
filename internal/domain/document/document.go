package document

import (
	"context"
	"errors"
)

// Collection names as they exist in the hosted database. These are
// case-sensitive and must match exactly; several were created by different
// mobile teams, hence the mixed pluralization.
const (
	CollectionDrivers          = "Drivers"
	CollectionCustomers        = "Customers"
	CollectionVehicleDetails   = "VehicleDetails"
	CollectionVehicleTypes     = "VehicleTypes"
	CollectionDeliveryRequests = "DeliveryRequests"
	CollectionDriversRatings   = "DriversRatings"
	CollectionDriverBalances   = "DriverBalances"
	CollectionDriverLocation   = "DriverLocation"
	CollectionCustomerLocation = "CustomerLocation"
	CollectionPaymentMode      = "PaymentMode"
	CollectionPaymentSettings  = "PaymentSettings"
	CollectionFAQs             = "FAQs"
	CollectionDriversDocuments = "DriversDocuments"
)

// Collections lists every known collection, in the order the store health
// probe reports them.
var Collections = []string{
	CollectionDrivers,
	CollectionCustomers,
	CollectionVehicleDetails,
	CollectionVehicleTypes,
	CollectionDeliveryRequests,
	CollectionDriversRatings,
	CollectionDriverBalances,
	CollectionDriverLocation,
	CollectionCustomerLocation,
	CollectionPaymentMode,
	CollectionPaymentSettings,
	CollectionFAQs,
	CollectionDriversDocuments,
}

var (
	// ErrNotFound means the document does not exist. Distinct from
	// ErrUnavailable so callers with fallback logic can branch on both.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable means the store could not be reached or refused the
	// request. Readers collapse this to empty results, never to a failure
	// surfaced on the dashboard.
	ErrUnavailable = errors.New("document store unavailable")
)

// Document is a raw schema-less record as stored. Field names pass through
// untouched; normalization happens in the entity layer.
type Document map[string]interface{}

// Record pairs a document with its store key.
type Record struct {
	ID   string
	Data Document
}

// InFilter matches documents whose field value is one of Values.
type InFilter struct {
	Field  string
	Values []interface{}
}

// Order requests server-side ordering on a single field.
type Order struct {
	Field string
	Desc  bool
}

// Store is the narrow adapter contract over the document database. It is the
// only seam between this service and persistence; everything above it takes
// the Store as an explicit dependency so tests can substitute the in-memory
// implementation.
type Store interface {
	// Get returns a single document, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Record, error)

	// List returns every document in the collection, unordered.
	List(ctx context.Context, collection string) ([]Record, error)

	// Query returns documents matching all equality filters plus an optional
	// in-filter, with optional ordering and limit. A nil order must not
	// require any secondary index.
	Query(ctx context.Context, collection string, eq map[string]interface{}, in *InFilter, order *Order, limit int) ([]Record, error)

	// Create stores a new document under a generated key and returns the key.
	Create(ctx context.Context, collection string, data Document) (string, error)

	// Update merges partial data into an existing document and returns
	// ErrNotFound for an absent id; it never creates a document. Last write
	// wins; there is no conflict detection.
	Update(ctx context.Context, collection, id string, data Document) error

	// Delete removes a document. Deleting an absent id succeeds: the hosted
	// store reports success on delete-of-absent and the in-memory store
	// mirrors that so both pin the same contract.
	Delete(ctx context.Context, collection, id string) error
}
