// Package mirror copies document collections into a relational database for
// reporting queries the document store cannot serve. The copy is one-way
// (store to database) and tolerant: a bad document is counted and skipped,
// never fatal to the run.
package mirror

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/pkg/logger"
)

type MirrorDriver struct {
	gorm.Model
	StoreID        string `gorm:"uniqueIndex"`
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	IsApproved     bool
	IsDriverOnline bool
	Latitude       float64
	Longitude      float64
	DateCreated    string
}

type MirrorCustomer struct {
	gorm.Model
	StoreID     string `gorm:"uniqueIndex"`
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Latitude    float64
	Longitude   float64
	DateCreated string
}

type MirrorOrder struct {
	gorm.Model
	StoreID         string `gorm:"uniqueIndex"`
	DriverStoreID   string `gorm:"index"`
	CustomerStoreID string `gorm:"index"`
	Status          string
	Amount          float64
	PickupAddress   string
	DeliveryAddress string
	TripCreatedAt   string
}

func DriverModel(d entity.Driver) MirrorDriver {
	return MirrorDriver{
		StoreID:        d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		PhoneNumber:    d.PhoneNumber,
		IsApproved:     d.IsApproved,
		IsDriverOnline: d.IsDriverOnline,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		DateCreated:    d.DateCreated,
	}
}

func CustomerModel(c entity.Customer) MirrorCustomer {
	return MirrorCustomer{
		StoreID:     c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		DateCreated: c.DateCreated,
	}
}

func OrderModel(t entity.Trip) MirrorOrder {
	return MirrorOrder{
		StoreID:         t.ID,
		DriverStoreID:   t.DriverID,
		CustomerStoreID: t.UserID,
		Status:          t.Status,
		Amount:          t.Amount,
		PickupAddress:   t.PickupAddress,
		DeliveryAddress: t.DeliveryAddress,
		TripCreatedAt:   t.CreatedAt,
	}
}

type Syncer struct {
	store  document.Store
	db     *gorm.DB
	dryRun bool
}

func NewSyncer(store document.Store, db *gorm.DB, dryRun bool) *Syncer {
	return &Syncer{store: store, db: db, dryRun: dryRun}
}

func (s *Syncer) Migrate() error {
	if s.dryRun {
		return nil
	}
	return s.db.AutoMigrate(&MirrorDriver{}, &MirrorCustomer{}, &MirrorOrder{})
}

type Summary struct {
	Model  string
	Synced int
	Errors int
}

func (s *Syncer) SyncDrivers(ctx context.Context) (Summary, error) {
	summary := Summary{Model: "drivers"}

	records, err := s.store.List(ctx, document.CollectionDrivers)
	if err != nil {
		return summary, fmt.Errorf("listing drivers: %w", err)
	}

	for _, rec := range records {
		model := DriverModel(entity.DriverFromDocument(rec.ID, rec.Data))
		if s.dryRun {
			summary.Synced++
			continue
		}
		if err := s.upsert(&model, "store_id", model.StoreID); err != nil {
			logger.Error("mirror: driver %s: %v", rec.ID, err)
			summary.Errors++
			continue
		}
		summary.Synced++
	}
	return summary, nil
}

func (s *Syncer) SyncCustomers(ctx context.Context) (Summary, error) {
	summary := Summary{Model: "customers"}

	records, err := s.store.List(ctx, document.CollectionCustomers)
	if err != nil {
		return summary, fmt.Errorf("listing customers: %w", err)
	}

	for _, rec := range records {
		model := CustomerModel(entity.CustomerFromDocument(rec.ID, rec.Data))
		if s.dryRun {
			summary.Synced++
			continue
		}
		if err := s.upsert(&model, "store_id", model.StoreID); err != nil {
			logger.Error("mirror: customer %s: %v", rec.ID, err)
			summary.Errors++
			continue
		}
		summary.Synced++
	}
	return summary, nil
}

func (s *Syncer) SyncOrders(ctx context.Context) (Summary, error) {
	summary := Summary{Model: "orders"}

	records, err := s.store.List(ctx, document.CollectionDeliveryRequests)
	if err != nil {
		return summary, fmt.Errorf("listing orders: %w", err)
	}

	for _, rec := range records {
		model := OrderModel(entity.TripFromDocument(rec.ID, rec.Data))
		if s.dryRun {
			summary.Synced++
			continue
		}
		if err := s.upsert(&model, "store_id", model.StoreID); err != nil {
			logger.Error("mirror: order %s: %v", rec.ID, err)
			summary.Errors++
			continue
		}
		summary.Synced++
	}
	return summary, nil
}

func (s *Syncer) upsert(model interface{}, conflictColumn, key string) error {
	if key == "" {
		return fmt.Errorf("empty store id")
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: conflictColumn}},
		UpdateAll: true,
	}).Create(model).Error
}
