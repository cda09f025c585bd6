package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculateQuoteHandler "github.com/housnkuh/booking-service/internal/api/handlers/calculate_quote"
	createBookingHandler "github.com/housnkuh/booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/housnkuh/booking-service/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/housnkuh/booking-service/internal/api/handlers/get_booking_stats"
	getCatalogueHandler "github.com/housnkuh/booking-service/internal/api/handlers/get_catalogue"
	getTrialStatusHandler "github.com/housnkuh/booking-service/internal/api/handlers/get_trial_status"
	getVendorBookingsHandler "github.com/housnkuh/booking-service/internal/api/handlers/get_vendor_bookings"
	updateBookingStatusHandler "github.com/housnkuh/booking-service/internal/api/handlers/update_booking_status"
	"github.com/housnkuh/booking-service/internal/api/middleware"
	"github.com/housnkuh/booking-service/internal/config"
	bookingRepo "github.com/housnkuh/booking-service/internal/infra/storage/booking"
	catalogueRepo "github.com/housnkuh/booking-service/internal/infra/storage/catalogue"
	vendorServiceClient "github.com/housnkuh/booking-service/internal/integrations/vendorservice"
	bookingsService "github.com/housnkuh/booking-service/internal/service/bookings"
	catalogueService "github.com/housnkuh/booking-service/internal/service/catalogue"
	calculateQuoteUC "github.com/housnkuh/booking-service/internal/usecase/calculate_quote"
	createBookingUC "github.com/housnkuh/booking-service/internal/usecase/create_booking"
	"github.com/housnkuh/booking-service/pkg/dbmetrics"
	"github.com/housnkuh/booking-service/pkg/logger"
	"github.com/housnkuh/booking-service/pkg/metrics"
	"github.com/housnkuh/booking-service/pkg/simpletxmanager"
	"github.com/housnkuh/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	vendorClient := vendorServiceClient.NewClient(
		cfg.VendorService.URL,
		time.Duration(cfg.VendorService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (VendorService=%s timeout=%ds)",
		cfg.VendorService.URL, cfg.VendorService.Timeout)

	var (
		bookingRepository   *bookingRepo.Repository
		catalogueRepository *catalogueRepo.Repository
	)

	// Transaction manager interface used by the booking submission usecase
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogueRepository = catalogueRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogueRepository = catalogueRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		vendorClient,
		log,
	)
	catalogueSvc := catalogueService.NewService(
		catalogueRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogueRepository,
		vendorClient,
		txMgr,
		log,
	)

	calculateQuoteUseCase := calculateQuoteUC.NewUseCase(
		catalogueRepository,
		log,
	)

	calculateQuote := calculateQuoteHandler.NewHandler(calculateQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getVendorBookings := getVendorBookingsHandler.NewHandler(bookingSvc, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getTrialStatus := getTrialStatusHandler.NewHandler(bookingSvc, log)
	getCatalogue := getCatalogueHandler.NewHandler(catalogueSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Configurator catalogue: units, addons, provision models, duration tiers
	api.HandleFunc("/catalogue", getCatalogue.Handle).Methods(http.MethodGet)

	// Live price quote for the configurator
	api.HandleFunc("/quotes", calculateQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Bookings ---
	// Submit a booking (freezes the package snapshot)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Fetch a booking by id
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Lifecycle transition (pending -> confirmed -> active -> completed)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Vendor dashboard ---
	// Booking history, optionally filtered by status
	protected.HandleFunc("/vendors/{vendorId}/bookings", getVendorBookings.Handle).Methods(http.MethodGet)

	// Per-status counts for the filter tabs
	protected.HandleFunc("/vendors/{vendorId}/bookings/stats", getBookingStats.Handle).Methods(http.MethodGet)

	// Derived trial state of the vendor account
	protected.HandleFunc("/vendors/{vendorId}/trial", getTrialStatus.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
