// Package analytics holds the pure aggregation functions behind the
// dashboard's summary numbers. Every function is synchronous, reads only the
// slice it is given, and has a well-defined zero-data output so a page can
// always render.
package analytics

import (
	"math"
	"sort"

	"github.com/swifttrack/backoffice/internal/domain/entity"
)

type DriverStats struct {
	TotalDrivers    int `json:"total_drivers"`
	ActiveDrivers   int `json:"active_drivers"`
	InactiveDrivers int `json:"inactive_drivers"`
	ApprovedDrivers int `json:"approved_drivers"`
	PendingDrivers  int `json:"pending_drivers"`
}

// ComputeDriverStats splits active/inactive on the status field. The
// dashboard home page uses this variant.
func ComputeDriverStats(drivers []entity.Driver) DriverStats {
	stats := DriverStats{TotalDrivers: len(drivers)}
	for _, d := range drivers {
		if d.Status == "active" {
			stats.ActiveDrivers++
		}
		if d.IsApproved {
			stats.ApprovedDrivers++
		} else {
			stats.PendingDrivers++
		}
	}
	stats.InactiveDrivers = stats.TotalDrivers - stats.ActiveDrivers
	return stats
}

// ComputeDriverOnlineStats splits active/inactive on the online flag instead.
// The driver listing page counts this way, so both variants stay exposed.
func ComputeDriverOnlineStats(drivers []entity.Driver) DriverStats {
	stats := DriverStats{TotalDrivers: len(drivers)}
	for _, d := range drivers {
		if d.IsDriverOnline {
			stats.ActiveDrivers++
		}
		if d.IsApproved {
			stats.ApprovedDrivers++
		} else {
			stats.PendingDrivers++
		}
	}
	stats.InactiveDrivers = stats.TotalDrivers - stats.ActiveDrivers
	return stats
}

type CustomerStats struct {
	TotalCustomers int `json:"total_customers"`
}

func ComputeCustomerStats(customers []entity.Customer) CustomerStats {
	return CustomerStats{TotalCustomers: len(customers)}
}

type RatingAnalytics struct {
	TotalRatings int             `json:"total_ratings"`
	Average      float64         `json:"average_rating"`
	Histogram    map[int]int     `json:"histogram"`
	AtLeast3     int             `json:"count_3_plus"`
	AtLeast4     int             `json:"count_4_plus"`
	AtLeast45    int             `json:"count_4_5_plus"`
	Recent       []entity.Rating `json:"recent_ratings"`
}

// ComputeRatingAnalytics aggregates one driver's ratings. Ratings without a
// numeric score count toward the total but are excluded from the average,
// histogram and thresholds.
func ComputeRatingAnalytics(ratings []entity.Rating) RatingAnalytics {
	result := RatingAnalytics{
		TotalRatings: len(ratings),
		Histogram:    make(map[int]int),
		Recent:       []entity.Rating{},
	}

	var sum float64
	var scored int
	for _, r := range ratings {
		if !r.HasScore {
			continue
		}
		sum += r.Score
		scored++

		star := int(r.Score)
		if star < 1 {
			star = 1
		}
		if star > 5 {
			star = 5
		}
		result.Histogram[star]++

		if r.Score >= 3.0 {
			result.AtLeast3++
		}
		if r.Score >= 4.0 {
			result.AtLeast4++
		}
		if r.Score >= 4.5 {
			result.AtLeast45++
		}
	}

	if scored > 0 {
		result.Average = round2(sum / float64(scored))
	}

	// Most recent first. Timestamps are ISO strings so lexicographic order
	// matches chronological order; a missing timestamp sorts oldest.
	sorted := make([]entity.Rating, len(ratings))
	copy(sorted, ratings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	result.Recent = sorted

	return result
}

type EarningsReport struct {
	DriverID         string  `json:"driver_id"`
	TotalEarnings    float64 `json:"total_earnings"`
	TotalTrips       int     `json:"total_trips"`
	AvgEarningsTrip  float64 `json:"avg_earnings_per_trip"`
	CurrentBalance   float64 `json:"current_balance"`
	PendingAmount    float64 `json:"pending_amount"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
}

// ComputeEarnings sums the completed trips' amounts and merges the stored
// balance. Withdrawals are derived: everything earned to date that is no
// longer in the balance.
func ComputeEarnings(driverID string, trips []entity.Trip, balance *entity.Balance) EarningsReport {
	report := EarningsReport{DriverID: driverID}

	for _, t := range trips {
		if !entity.IsCompletedStatus(t.Status) {
			continue
		}
		report.TotalTrips++
		report.TotalEarnings += t.Amount
	}
	if report.TotalTrips > 0 {
		report.AvgEarningsTrip = round2(report.TotalEarnings / float64(report.TotalTrips))
	}

	if balance != nil {
		report.CurrentBalance = balance.CurrentBalance
		report.PendingAmount = balance.PendingAmount
		report.TotalWithdrawals = balance.TotalEarned - balance.CurrentBalance
	}

	return report
}

type TripAnalytics struct {
	TotalTrips     int     `json:"total_trips"`
	CompletedTrips int     `json:"completed_trips"`
	CompletionRate float64 `json:"completion_rate"`
	TotalRevenue   float64 `json:"total_revenue"`
}

func ComputeTripAnalytics(trips []entity.Trip) TripAnalytics {
	result := TripAnalytics{TotalTrips: len(trips)}

	for _, t := range trips {
		if entity.IsCompletedStatus(t.Status) {
			result.CompletedTrips++
			result.TotalRevenue += t.Amount
		}
	}

	if result.TotalTrips > 0 {
		result.CompletionRate = round2(float64(result.CompletedTrips) / float64(result.TotalTrips) * 100)
	}

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
