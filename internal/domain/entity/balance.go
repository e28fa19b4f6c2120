package entity

import (
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

// DriverBalances documents are keyed by the driver id itself.
const (
	BalanceFieldCurrentBalance = "currentBalance"
	BalanceFieldPendingAmount  = "pendingAmount"
	BalanceFieldTotalEarned    = "totalEarned"
)

type Balance struct {
	DriverID       string  `json:"driverId"`
	CurrentBalance float64 `json:"currentBalance"`
	PendingAmount  float64 `json:"pendingAmount"`
	TotalEarned    float64 `json:"totalEarned"`
}

func BalanceFromDocument(driverID string, doc document.Document) Balance {
	return Balance{
		DriverID:       driverID,
		CurrentBalance: numeric.ToFloat(doc[BalanceFieldCurrentBalance]),
		PendingAmount:  numeric.ToFloat(doc[BalanceFieldPendingAmount]),
		TotalEarned:    numeric.ToFloat(doc[BalanceFieldTotalEarned]),
	}
}
