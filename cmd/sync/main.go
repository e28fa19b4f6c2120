package main

import (
	"context"
	"flag"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/swifttrack/backoffice/internal/adapter/store"
	"github.com/swifttrack/backoffice/internal/infrastructure/firebase"
	"github.com/swifttrack/backoffice/internal/mirror"
	"github.com/swifttrack/backoffice/pkg/config"
)

func main() {
	model := flag.String("model", "all", "model to sync (drivers|customers|orders|all)")
	direction := flag.String("direction", "from-store", "sync direction (only from-store is supported)")
	dryRun := flag.Bool("dry-run", false, "count what would be synced without writing")
	flag.Parse()

	if *direction != "from-store" {
		log.Fatalf("Unsupported direction %q (only from-store is supported)", *direction)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.MirrorDSN == "" {
		log.Fatal("MIRROR_DATABASE_URL is required")
	}

	ctx := context.Background()

	firestoreClient, err := firebase.NewFirestoreClient(ctx, cfg.FirebaseProject)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer firestoreClient.Close()

	db, err := gorm.Open(postgres.Open(cfg.MirrorDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to mirror database: %v", err)
	}

	syncer := mirror.NewSyncer(store.NewFirestoreStore(firestoreClient), db, *dryRun)
	if err := syncer.Migrate(); err != nil {
		log.Fatalf("Failed to migrate mirror schema: %v", err)
	}

	if *dryRun {
		log.Println("DRY RUN MODE - no changes will be made")
	}

	run := func(name string, sync func(context.Context) (mirror.Summary, error)) {
		summary, err := sync(ctx)
		if err != nil {
			log.Fatalf("Sync failed for %s: %v", name, err)
		}
		if summary.Errors > 0 {
			log.Printf("Synced %d %s with %d errors", summary.Synced, summary.Model, summary.Errors)
			return
		}
		log.Printf("Synced %d %s", summary.Synced, summary.Model)
	}

	switch *model {
	case "drivers":
		run("drivers", syncer.SyncDrivers)
	case "customers":
		run("customers", syncer.SyncCustomers)
	case "orders":
		run("orders", syncer.SyncOrders)
	case "all":
		run("drivers", syncer.SyncDrivers)
		run("customers", syncer.SyncCustomers)
		run("orders", syncer.SyncOrders)
	default:
		log.Fatalf("Unknown model %q (want drivers, customers, orders or all)", *model)
	}
}
