package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	pb "rentescrow-backend/api/gen/v1"
	api "rentescrow-backend/internal/api/grpc"
	"rentescrow-backend/internal/api/grpc/interceptor"
	httpapi "rentescrow-backend/internal/api/http"
	"rentescrow-backend/internal/clock"
	"rentescrow-backend/internal/config"
	"rentescrow-backend/internal/delegation"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/jobs"
	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/metrics"
	"rentescrow-backend/internal/repository"
	"rentescrow-backend/internal/repository/memory"
	"rentescrow-backend/internal/repository/postgres"
	"rentescrow-backend/internal/scheduler"
	"rentescrow-backend/internal/security"
	"rentescrow-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rent escrow server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "grpc_address", cfg.GetServerAddress(), "http_address", cfg.GetHTTPAddress())
	logger.Info("Settlement configuration",
		"engine", cfg.Settlement.EngineAddress,
		"keeper_fee_percent", cfg.Settlement.KeeperFeePercent,
		"driver", cfg.Database.Driver,
	)

	ctx := context.Background()

	// Initialize storage
	var store repository.Store
	switch cfg.Database.Driver {
	case "memory":
		logger.Warn("Using in-memory store; state is lost on restart")
		store = memory.NewStore()
	default:
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		logger.Info("Database connection established")

		if cfg.Database.Migrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				log.Fatalf("Failed to migrate database: %v", err)
			}
		}
		store = postgres.NewStore(db)
	}

	// Initialize services
	clk := clock.System()
	m := metrics.New()
	settings := service.Settings{
		EngineAddress:    domain.Address(cfg.Settlement.EngineAddress),
		KeeperFeePercent: cfg.Settlement.KeeperFeePercent,
	}
	rentSvc := service.NewRentService(store, clk, delegation.NewFactory(), settings, m)
	ledgerSvc := service.NewLedgerService(store, clk)
	tokenSvc := service.NewTokenService(store)

	// Initialize security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	authInterceptor := interceptor.NewAuthInterceptor(tokenManager)

	// Set up gRPC server
	lis, err := net.Listen("tcp", cfg.GetServerAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetServerAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptor.RecoveryUnary(),
			authInterceptor.Unary(),
		),
	)
	// Register services
	pb.RegisterRentServiceServer(s, api.NewRentHandler(rentSvc))
	pb.RegisterLedgerServiceServer(s, api.NewLedgerHandler(ledgerSvc))
	pb.RegisterTokenServiceServer(s, api.NewTokenHandler(tokenSvc))

	// Register reflection service for grpcurl
	reflection.Register(s)

	// Set up HTTP query server
	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, httpapi.NewQueryHandler(rentSvc, ledgerSvc, tokenSvc, tokenManager), m.Handler())
	httpServer := &http.Server{
		Addr:              cfg.GetHTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP query server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	// In-process keeper
	var cronScheduler *scheduler.Scheduler
	if cfg.Scheduler.InProcess {
		runner := jobs.NewJobRunner(rentSvc, clk, m, cfg)
		cronScheduler, err = scheduler.NewScheduler(runner)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		cronScheduler.Start()
	}

	go func() {
		logger.Info("gRPC server listening", "address", cfg.GetServerAddress())
		if err := s.Serve(lis); err != nil {
			logger.Error("Failed to serve gRPC", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	if cronScheduler != nil {
		cronScheduler.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
	s.GracefulStop()
	logger.Info("Server stopped. Goodbye!")
}
