package entity

import (
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

// DriversRatings field names. Note the casing differs from trips: here the
// driver is "driverID" and the customer "customerID".
const (
	RatingFieldDriverID   = "driverID"
	RatingFieldCustomerID = "customerID"
	RatingFieldRating     = "rating"
	RatingFieldStars      = "stars"
	RatingFieldCreatedAt  = "createdAt"
	RatingFieldComment    = "comment"
)

type Rating struct {
	ID         string  `json:"id"`
	DriverID   string  `json:"driverID,omitempty"`
	CustomerID string  `json:"customerID,omitempty"`
	Score      float64 `json:"score"`
	// HasScore is false when neither score field held a numeric value. Such
	// ratings count toward totals but stay out of the histogram and average.
	HasScore  bool   `json:"-"`
	CreatedAt string `json:"createdAt,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

func RatingFromDocument(id string, doc document.Document) Rating {
	r := Rating{
		ID:         id,
		DriverID:   numeric.ToString(doc[RatingFieldDriverID]),
		CustomerID: numeric.ToString(doc[RatingFieldCustomerID]),
		CreatedAt:  numeric.ToString(doc[RatingFieldCreatedAt]),
		Comment:    numeric.ToString(doc[RatingFieldComment]),
	}

	// The score appears under either "rating" or "stars"; "rating" wins when
	// both are present.
	if raw, ok := doc[RatingFieldRating]; ok {
		r.Score, r.HasScore = numeric.ToFloatOK(raw)
		if r.HasScore {
			return r
		}
	}
	if raw, ok := doc[RatingFieldStars]; ok {
		r.Score, r.HasScore = numeric.ToFloatOK(raw)
	}
	return r
}

// EnrichedRating carries the rating customer's name and a best-effort link to
// the trip it most plausibly belongs to. Ratings store no trip reference, so
// the link is inferred and non-authoritative; when no candidate trip exists
// the link fields stay empty.
type EnrichedRating struct {
	Rating
	CustomerName string `json:"customer_name,omitempty"`
	TripID       string `json:"trip_id,omitempty"`
	TripStatus   string `json:"trip_status,omitempty"`
}
