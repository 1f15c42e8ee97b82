package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"lotto/application"
	"lotto/config"
	"lotto/database"
	"lotto/infrastructure"
	"lotto/infrastructure/observability"
)

// Run initializes and starts the lottery service
func Run(ctx context.Context) error {
	log.Println("Starting lotto service...")

	// Load configuration
	cfg := config.Get()

	// Initialize metrics
	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize NATS publishing side
	log.Println("Connecting to NATS...")
	natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
	if err := natsClient.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}

	subjectMapper := infrastructure.NewEventSubjectMapper()
	eventPublisher := infrastructure.NewNATSEventPublisher(natsClient, subjectMapper)
	if err := eventPublisher.EnsureDomainEventStream(); err != nil {
		return fmt.Errorf("failed to ensure domain event stream: %w", err)
	}
	if err := natsClient.EnsureOracleStream(); err != nil {
		return fmt.Errorf("failed to ensure oracle stream: %w", err)
	}

	// Initialize unit of work factory
	uowFactory := infrastructure.NewUnitOfWorkFactoryWrapper(db, eventPublisher)

	// Initialize oracle adapter and application handlers
	oracle := infrastructure.NewOracleAdapter(natsClient)
	entryHandler := application.NewEntryHandler(uowFactory, oracle, cfg.OperatorIDs)
	fulfillmentHandler := application.NewFulfillmentHandler(uowFactory, oracle, cfg.OperatorIDs)
	adminHandler := application.NewAdminHandler(uowFactory, oracle, cfg.OperatorIDs)

	// Start the inbound message consumer
	consumer := infrastructure.NewMessageConsumer(
		cfg.NATSServers,
		entryHandler,
		fulfillmentHandler,
		adminHandler,
		cfg.OracleServiceName,
	)
	consumerErr := make(chan error, 1)
	go func() {
		consumerErr <- consumer.Start(ctx)
	}()

	// Start background workers
	stuckWorker := application.NewStuckDrawWorker(uowFactory, cfg.StuckDrawThresholdSeconds)
	stopStuckWorker := stuckWorker.Start(ctx)

	log.Printf("Service is running in %s mode...", cfg.Environment)
	select {
	case <-ctx.Done():
	case err := <-consumerErr:
		if err != nil {
			log.Printf("Message consumer stopped with error: %v", err)
		}
	}

	// Cleanup resources
	log.Println("Shutting down service...")
	stopStuckWorker()
	consumer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := natsClient.Close(); err != nil {
		log.Printf("Error closing NATS connection: %v", err)
	}

	log.Println("Closing database connection...")
	db.Close()

	if err := observability.ShutdownGlobalMetrics(shutdownCtx); err != nil {
		log.Printf("Error shutting down metrics: %v", err)
	}

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
