package usecase

import (
	"context"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/internal/usecase/analytics"
	"github.com/swifttrack/backoffice/pkg/logger"
)

type RatingUseCase struct {
	store document.Store
}

func NewRatingUseCase(store document.Store) *RatingUseCase {
	return &RatingUseCase{store: store}
}

// DriverRatingsView combines a driver's enriched ratings with the rating
// aggregates for the detail page.
type DriverRatingsView struct {
	Ratings   []entity.EnrichedRating   `json:"ratings"`
	Analytics analytics.RatingAnalytics `json:"analytics"`
}

func (uc *RatingUseCase) DriverRatings(ctx context.Context, driverID string) DriverRatingsView {
	records, err := uc.store.Query(ctx, document.CollectionDriversRatings,
		map[string]interface{}{entity.RatingFieldDriverID: driverID}, nil, nil, 0)
	if err != nil {
		logger.LogStoreFault(document.CollectionDriversRatings, "query", err)
		return DriverRatingsView{
			Ratings:   []entity.EnrichedRating{},
			Analytics: analytics.ComputeRatingAnalytics(nil),
		}
	}

	ratings := make([]entity.Rating, 0, len(records))
	for _, rec := range records {
		ratings = append(ratings, entity.RatingFromDocument(rec.ID, rec.Data))
	}

	view := DriverRatingsView{
		Ratings:   make([]entity.EnrichedRating, 0, len(ratings)),
		Analytics: analytics.ComputeRatingAnalytics(ratings),
	}
	for _, rating := range ratings {
		view.Ratings = append(view.Ratings, enrichRating(ctx, uc.store, rating))
	}
	return view
}
