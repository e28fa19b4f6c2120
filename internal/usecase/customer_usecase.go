package usecase

import (
	"context"
	"errors"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/internal/usecase/analytics"
	"github.com/swifttrack/backoffice/pkg/logger"
)

type CustomerUseCase struct {
	store document.Store
}

func NewCustomerUseCase(store document.Store) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

func (uc *CustomerUseCase) GetAllCustomers(ctx context.Context) []entity.Customer {
	records, err := uc.store.List(ctx, document.CollectionCustomers)
	if err != nil {
		logger.LogStoreFault(document.CollectionCustomers, "list", err)
		return []entity.Customer{}
	}

	customers := make([]entity.Customer, 0, len(records))
	for _, rec := range records {
		customers = append(customers, entity.CustomerFromDocument(rec.ID, rec.Data))
	}
	return customers
}

func (uc *CustomerUseCase) GetCustomerByID(ctx context.Context, id string) *entity.Customer {
	customer, err := fetchCustomer(ctx, uc.store, id)
	if err != nil {
		if !errors.Is(err, document.ErrNotFound) {
			logger.LogStoreFault(document.CollectionCustomers, "get", err)
		}
		return nil
	}
	return &customer
}

func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, data document.Document) (string, bool) {
	id, err := uc.store.Create(ctx, document.CollectionCustomers, data)
	if err != nil {
		logger.LogStoreFault(document.CollectionCustomers, "create", err)
		return "", false
	}
	return id, true
}

func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, data document.Document) bool {
	if err := uc.store.Update(ctx, document.CollectionCustomers, id, data); err != nil {
		logger.LogStoreFault(document.CollectionCustomers, "update", err)
		return false
	}
	return true
}

func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) bool {
	if err := uc.store.Delete(ctx, document.CollectionCustomers, id); err != nil {
		logger.LogStoreFault(document.CollectionCustomers, "delete", err)
		return false
	}
	return true
}

func (uc *CustomerUseCase) Stats(ctx context.Context) analytics.CustomerStats {
	return analytics.ComputeCustomerStats(uc.GetAllCustomers(ctx))
}

// LiveStatus is the customer variant of the location projection: CustomerLocation
// document first, then the position embedded on the customer record (no online
// gate for customers), then the offline sentinel. Customers carry no trip.
func (uc *CustomerUseCase) LiveStatus(ctx context.Context, id string) entity.CustomerLiveStatus {
	status := entity.CustomerLiveStatus{CustomerID: id}

	if rec, err := uc.store.Get(ctx, document.CollectionCustomerLocation, id); err == nil {
		status.Location = entity.LocationFromDocument(rec.Data)
	} else if customer := uc.GetCustomerByID(ctx, id); customer != nil && (customer.Latitude != 0 || customer.Longitude != 0) {
		status.Location = entity.Location{
			Latitude:  customer.Latitude,
			Longitude: customer.Longitude,
			IsOnline:  true,
		}
	} else {
		status.Location = entity.UnavailableLocation()
	}

	return status
}
