package usecase

import (
	"context"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/pkg/logger"
)

// PaymentUseCase manages the two payment configuration collections: payment
// modes (cash, card, wallet toggles) and per-vehicle-type pricing settings.
type PaymentUseCase struct {
	store document.Store
}

func NewPaymentUseCase(store document.Store) *PaymentUseCase {
	return &PaymentUseCase{store: store}
}

func (uc *PaymentUseCase) GetAllPaymentModes(ctx context.Context) []entity.PaymentMode {
	records, err := uc.store.List(ctx, document.CollectionPaymentMode)
	if err != nil {
		logger.LogStoreFault(document.CollectionPaymentMode, "list", err)
		return []entity.PaymentMode{}
	}

	modes := make([]entity.PaymentMode, 0, len(records))
	for _, rec := range records {
		modes = append(modes, entity.PaymentModeFromDocument(rec.ID, rec.Data))
	}
	return modes
}

func (uc *PaymentUseCase) CreatePaymentMode(ctx context.Context, data document.Document) (string, bool) {
	id, err := uc.store.Create(ctx, document.CollectionPaymentMode, data)
	if err != nil {
		logger.LogStoreFault(document.CollectionPaymentMode, "create", err)
		return "", false
	}
	return id, true
}

func (uc *PaymentUseCase) UpdatePaymentMode(ctx context.Context, id string, data document.Document) bool {
	if err := uc.store.Update(ctx, document.CollectionPaymentMode, id, data); err != nil {
		logger.LogStoreFault(document.CollectionPaymentMode, "update", err)
		return false
	}
	return true
}

func (uc *PaymentUseCase) DeletePaymentMode(ctx context.Context, id string) bool {
	if err := uc.store.Delete(ctx, document.CollectionPaymentMode, id); err != nil {
		logger.LogStoreFault(document.CollectionPaymentMode, "delete", err)
		return false
	}
	return true
}

// GetAllPaymentSettings returns pricing settings with their vehicle type
// resolved for display.
func (uc *PaymentUseCase) GetAllPaymentSettings(ctx context.Context) []entity.EnrichedPaymentSetting {
	records, err := uc.store.List(ctx, document.CollectionPaymentSettings)
	if err != nil {
		logger.LogStoreFault(document.CollectionPaymentSettings, "list", err)
		return []entity.EnrichedPaymentSetting{}
	}

	settings := make([]entity.EnrichedPaymentSetting, 0, len(records))
	for _, rec := range records {
		setting := entity.PaymentSettingFromDocument(rec.ID, rec.Data)
		settings = append(settings, enrichPaymentSetting(ctx, uc.store, setting))
	}
	return settings
}

func (uc *PaymentUseCase) CreatePaymentSetting(ctx context.Context, data document.Document) (string, bool) {
	id, err := uc.store.Create(ctx, document.CollectionPaymentSettings, data)
	if err != nil {
		logger.LogStoreFault(document.CollectionPaymentSettings, "create", err)
		return "", false
	}
	return id, true
}

func (uc *PaymentUseCase) UpdatePaymentSetting(ctx context.Context, id string, data document.Document) bool {
	if err := uc.store.Update(ctx, document.CollectionPaymentSettings, id, data); err != nil {
		logger.LogStoreFault(document.CollectionPaymentSettings, "update", err)
		return false
	}
	return true
}

func (uc *PaymentUseCase) DeletePaymentSetting(ctx context.Context, id string) bool {
	if err := uc.store.Delete(ctx, document.CollectionPaymentSettings, id); err != nil {
		logger.LogStoreFault(document.CollectionPaymentSettings, "delete", err)
		return false
	}
	return true
}

func (uc *PaymentUseCase) GetAllVehicleTypes(ctx context.Context) []entity.VehicleType {
	records, err := uc.store.List(ctx, document.CollectionVehicleTypes)
	if err != nil {
		logger.LogStoreFault(document.CollectionVehicleTypes, "list", err)
		return []entity.VehicleType{}
	}

	types := make([]entity.VehicleType, 0, len(records))
	for _, rec := range records {
		types = append(types, entity.VehicleTypeFromDocument(rec.ID, rec.Data))
	}
	return types
}
