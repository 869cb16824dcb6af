package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rentescrow-backend/internal/clock"
	"rentescrow-backend/internal/config"
	"rentescrow-backend/internal/delegation"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/jobs"
	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/metrics"
	"rentescrow-backend/internal/repository/postgres"
	"rentescrow-backend/internal/scheduler"
	"rentescrow-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'settle-expired-rentals', 'close-ended-auctions', 'all')")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g., ':9102')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rent escrow keeper...", "keeper", cfg.Settlement.KeeperAddress)

	if cfg.Database.Driver == "memory" {
		log.Fatalf("The keeper needs a shared database; with the memory driver the server runs keeper jobs itself")
	}

	// Initialize Database
	ctx := context.Background()
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	m := metrics.New()
	clk := clock.System()
	rentSvc := service.NewRentService(store, clk, delegation.NewFactory(), service.Settings{
		EngineAddress:    domain.Address(cfg.Settlement.EngineAddress),
		KeeperFeePercent: cfg.Settlement.KeeperFeePercent,
	}, m)

	jobRunner := jobs.NewJobRunner(rentSvc, clk, m, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	if *metricsAddr != "" {
		go func() {
			logger.Info("Metrics listening", "address", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, m.Handler()); err != nil {
				logger.Error("Metrics server error", "error", err)
			}
		}()
	}

	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	cronScheduler.Start()
	logger.Info("Keeper is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down keeper...")
	cronScheduler.Stop()
	logger.Info("Keeper stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "settle-expired-rentals":
		jobRunner.SettleExpiredRentals()
	case "close-ended-auctions":
		jobRunner.CloseEndedAuctions()
	case "all":
		jobRunner.RunAll()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - settle-expired-rentals\n")
		fmt.Printf("  - close-ended-auctions\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
