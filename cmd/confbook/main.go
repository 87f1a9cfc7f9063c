package main

import (
	"confbook/internal/coordinator"
	"confbook/internal/handler"
	"confbook/internal/inventory"
	"confbook/internal/ledger"
	"confbook/internal/query"
	"confbook/internal/registration"
	"confbook/internal/validator"
	"confbook/pkg/app"
	"confbook/pkg/config"
	"confbook/pkg/events"
)

const ServiceName = "confbook"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting conference booking service")

	publisher := initPublisher(cfg)
	apiHandler := initHandlers(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewHealthHandler(cfg.Log), apiHandler)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Event publisher close failed", "error", err)
		}
	})
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Lifecycle events disabled, no Kafka brokers configured")
		return events.Noop{}
	}

	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, ServiceName)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}
	cfg.Log.Info("Lifecycle events enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	return publisher
}

func initHandlers(cfg *config.Config, publisher events.Publisher) *handler.Handler {
	store := inventory.NewStore()
	bookings := ledger.NewLedger()
	requestValidator := validator.NewRequestValidator(cfg.Log)

	coord := coordinator.NewCoordinator(store, bookings, coordinator.NewScheduler(), publisher, cfg)
	registrationService := registration.NewService(store, requestValidator, cfg.Log)
	queryService := query.NewService(store)

	cfg.Log.Info("Booking coordinator initialized", "confirmation_window", cfg.ConfirmationWindow)
	return handler.NewHandler(registrationService, coord, queryService, requestValidator, cfg.Log)
}
