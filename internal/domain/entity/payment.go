package entity

import (
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

const (
	PaymentModeFieldName     = "name"
	PaymentModeFieldIsActive = "isActive"

	PaymentSettingFieldVehicleTypeID = "vehicleTypeId"
	PaymentSettingFieldPricePerKm    = "pricePerKm"
	PaymentSettingFieldAddOnFee      = "addOnFee"
)

type PaymentMode struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	IsActive bool   `json:"isActive"`
}

func PaymentModeFromDocument(id string, doc document.Document) PaymentMode {
	return PaymentMode{
		ID:       id,
		Name:     numeric.ToString(doc[PaymentModeFieldName]),
		IsActive: numeric.ToBool(doc[PaymentModeFieldIsActive]),
	}
}

type PaymentSetting struct {
	ID            string  `json:"id"`
	VehicleTypeID string  `json:"vehicleTypeId,omitempty"`
	PricePerKm    float64 `json:"pricePerKm"`
	AddOnFee      float64 `json:"addOnFee"`
}

func PaymentSettingFromDocument(id string, doc document.Document) PaymentSetting {
	return PaymentSetting{
		ID:            id,
		VehicleTypeID: numeric.ToString(doc[PaymentSettingFieldVehicleTypeID]),
		PricePerKm:    numeric.ToFloat(doc[PaymentSettingFieldPricePerKm]),
		AddOnFee:      numeric.ToFloat(doc[PaymentSettingFieldAddOnFee]),
	}
}

// EnrichedPaymentSetting resolves the vehicle type for display; when the type
// cannot be resolved the raw id is echoed as the name.
type EnrichedPaymentSetting struct {
	PaymentSetting
	VehicleTypeName string `json:"vehicleTypeName,omitempty"`
	VehicleTypeIcon string `json:"vehicleTypeIcon,omitempty"`
}
