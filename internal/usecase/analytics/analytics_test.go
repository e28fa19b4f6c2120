package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swifttrack/backoffice/internal/domain/entity"
)

func driver(status string, online, approved bool) entity.Driver {
	return entity.Driver{Status: status, IsDriverOnline: online, IsApproved: approved}
}

func TestDriverStatsActivePlusInactiveEqualsTotal(t *testing.T) {
	drivers := []entity.Driver{
		driver("active", true, true),
		driver("active", false, false),
		driver("", true, true),
		driver("suspended", false, false),
	}

	stats := ComputeDriverStats(drivers)
	assert.Equal(t, 4, stats.TotalDrivers)
	assert.Equal(t, 2, stats.ActiveDrivers)
	assert.Equal(t, stats.TotalDrivers, stats.ActiveDrivers+stats.InactiveDrivers)
	assert.Equal(t, 2, stats.ApprovedDrivers)
	assert.Equal(t, 2, stats.PendingDrivers)

	online := ComputeDriverOnlineStats(drivers)
	assert.Equal(t, 2, online.ActiveDrivers)
	assert.Equal(t, online.TotalDrivers, online.ActiveDrivers+online.InactiveDrivers)
}

func TestDriverStatsEmpty(t *testing.T) {
	stats := ComputeDriverStats(nil)
	assert.Equal(t, DriverStats{}, stats)
}

func TestRatingAnalyticsEmpty(t *testing.T) {
	result := ComputeRatingAnalytics(nil)
	assert.Equal(t, 0, result.TotalRatings)
	assert.Equal(t, 0.0, result.Average)
	assert.Empty(t, result.Histogram)
	assert.Empty(t, result.Recent)
}

func TestRatingAnalyticsHistogramAndThresholds(t *testing.T) {
	ratings := []entity.Rating{
		{Score: 5, HasScore: true, CreatedAt: "2025-03-01T00:00:00Z"},
		{Score: 4.5, HasScore: true, CreatedAt: "2025-02-01T00:00:00Z"},
		{Score: 3.2, HasScore: true, CreatedAt: "2025-01-01T00:00:00Z"},
		{Score: 0.5, HasScore: true, CreatedAt: ""},
		{Score: 9, HasScore: true, CreatedAt: "2025-04-01T00:00:00Z"},
		{HasScore: false, CreatedAt: "2025-05-01T00:00:00Z"},
	}

	result := ComputeRatingAnalytics(ratings)
	assert.Equal(t, 6, result.TotalRatings)

	// Non-numeric score is excluded from the histogram; out-of-range scores
	// clamp into [1,5].
	sum := 0
	for _, count := range result.Histogram {
		sum += count
	}
	assert.Equal(t, 5, sum)
	assert.Equal(t, 2, result.Histogram[5]) // 5 and clamped 9
	assert.Equal(t, 1, result.Histogram[1]) // clamped 0.5

	// Thresholds are cumulative, so they never increase with the cutoff.
	assert.LessOrEqual(t, result.AtLeast45, result.AtLeast4)
	assert.LessOrEqual(t, result.AtLeast4, result.AtLeast3)
	assert.Equal(t, 4, result.AtLeast3)
	assert.Equal(t, 3, result.AtLeast4)
	assert.Equal(t, 3, result.AtLeast45)
}

func TestRatingAnalyticsRecentOrdering(t *testing.T) {
	var ratings []entity.Rating
	for _, ts := range []string{
		"2025-01-05T00:00:00Z", "", "2025-01-09T00:00:00Z", "2025-01-01T00:00:00Z",
	} {
		ratings = append(ratings, entity.Rating{Score: 4, HasScore: true, CreatedAt: ts})
	}

	result := ComputeRatingAnalytics(ratings)
	assert.Equal(t, "2025-01-09T00:00:00Z", result.Recent[0].CreatedAt)
	// Missing timestamp sorts as the oldest entry.
	assert.Equal(t, "", result.Recent[len(result.Recent)-1].CreatedAt)
}

func TestRatingAnalyticsRecentCapsAtTen(t *testing.T) {
	var ratings []entity.Rating
	for i := 0; i < 15; i++ {
		ratings = append(ratings, entity.Rating{Score: 4, HasScore: true})
	}
	result := ComputeRatingAnalytics(ratings)
	assert.Len(t, result.Recent, 10)
	assert.Equal(t, 15, result.TotalRatings)
}

func TestEarningsMixedAmountTypes(t *testing.T) {
	// Two completed trips at "50" (string) and 30 (numeric); a cancelled trip
	// of 1000 must not count.
	trips := []entity.Trip{
		{Status: "completed", Amount: 50},
		{Status: "delivered", Amount: 30},
		{Status: "cancelled", Amount: 1000},
	}

	report := ComputeEarnings("d1", trips, nil)
	assert.Equal(t, 80.0, report.TotalEarnings)
	assert.Equal(t, 2, report.TotalTrips)
	assert.Equal(t, 40.0, report.AvgEarningsTrip)
	assert.Equal(t, 0.0, report.CurrentBalance)
}

func TestEarningsWithBalance(t *testing.T) {
	balance := &entity.Balance{CurrentBalance: 120, PendingAmount: 30, TotalEarned: 500}
	report := ComputeEarnings("d1", nil, balance)

	assert.Equal(t, 0.0, report.AvgEarningsTrip)
	assert.Equal(t, 120.0, report.CurrentBalance)
	assert.Equal(t, 30.0, report.PendingAmount)
	assert.Equal(t, 380.0, report.TotalWithdrawals)
}

func TestTripAnalytics(t *testing.T) {
	trips := []entity.Trip{
		{Status: "completed", Amount: 100},
		{Status: "ended", Amount: 50},
		{Status: "pending", Amount: 75},
		{Status: "weird_status", Amount: 10},
	}

	result := ComputeTripAnalytics(trips)
	assert.Equal(t, 4, result.TotalTrips)
	assert.Equal(t, 2, result.CompletedTrips)
	assert.Equal(t, 50.0, result.CompletionRate)
	assert.Equal(t, 150.0, result.TotalRevenue)
	assert.GreaterOrEqual(t, result.CompletionRate, 0.0)
	assert.LessOrEqual(t, result.CompletionRate, 100.0)
}

func TestTripAnalyticsEmpty(t *testing.T) {
	result := ComputeTripAnalytics(nil)
	assert.Equal(t, 0.0, result.CompletionRate)
	assert.Equal(t, 0, result.TotalTrips)
}
