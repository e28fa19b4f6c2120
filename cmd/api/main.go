package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/swifttrack/backoffice/internal/adapter/api"
	"github.com/swifttrack/backoffice/internal/adapter/api/handler"
	"github.com/swifttrack/backoffice/internal/adapter/api/router"
	"github.com/swifttrack/backoffice/internal/adapter/mail"
	"github.com/swifttrack/backoffice/internal/adapter/store"
	"github.com/swifttrack/backoffice/internal/infrastructure/firebase"
	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	firestoreClient, err := firebase.NewFirestoreClient(ctx, cfg.FirebaseProject)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer firestoreClient.Close()

	documentStore := store.NewFirestoreStore(firestoreClient)

	driverUseCase := usecase.NewDriverUseCase(documentStore)
	customerUseCase := usecase.NewCustomerUseCase(documentStore)
	vehicleUseCase := usecase.NewVehicleUseCase(documentStore)
	tripUseCase := usecase.NewTripUseCase(documentStore)
	ratingUseCase := usecase.NewRatingUseCase(documentStore)
	paymentUseCase := usecase.NewPaymentUseCase(documentStore)
	faqUseCase := usecase.NewFAQUseCase(documentStore)

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	mailingUseCase := usecase.NewMailingUseCase(driverUseCase, customerUseCase, mailer)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e, router.Handlers{
		Health:   handler.NewHealthHandler(documentStore, driverUseCase, customerUseCase),
		Driver:   handler.NewDriverHandler(driverUseCase, ratingUseCase),
		Customer: handler.NewCustomerHandler(customerUseCase),
		Vehicle:  handler.NewVehicleHandler(vehicleUseCase),
		Order:    handler.NewOrderHandler(tripUseCase),
		Payment:  handler.NewPaymentHandler(paymentUseCase),
		FAQ:      handler.NewFAQHandler(faqUseCase),
		Mailing:  handler.NewMailingHandler(mailingUseCase),
	})

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
