package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/hotel-manager/internal/api/commands"
	availabilityCommand "github.com/m04kA/hotel-manager/internal/api/commands/availability"
	searchCommand "github.com/m04kA/hotel-manager/internal/api/commands/search"
	"github.com/m04kA/hotel-manager/internal/api/console"
	"github.com/m04kA/hotel-manager/internal/api/middleware"
	"github.com/m04kA/hotel-manager/internal/config"
	bookingRepo "github.com/m04kA/hotel-manager/internal/infra/storage/booking"
	hotelRepo "github.com/m04kA/hotel-manager/internal/infra/storage/hotel"
	availabilityService "github.com/m04kA/hotel-manager/internal/service/availability"
	"github.com/m04kA/hotel-manager/pkg/logger"
	"github.com/m04kA/hotel-manager/pkg/metrics"
)

const defaultConfigPath = "config.toml"

// options are the command line flags
type options struct {
	configPath   string
	hotelsFile   string
	bookingsFile string
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("hotel-manager", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", defaultConfigPath, "TOML configuration file")
	fs.StringVar(&opts.hotelsFile, "hotels", "", "The JSON file containing hotels data")
	fs.StringVar(&opts.bookingsFile, "bookings", "", "The JSON file containing booking data")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

// requireFile fails with the user-facing message when path is missing or is a directory
func requireFile(option, path string) error {
	if path == "" {
		return fmt.Errorf("Option '--%s' is required.", option)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return fmt.Errorf("File \"%s\" does not exist.", abs)
	}

	return nil
}

func main() {
	// Parse command line flags
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Load configuration, flags take precedence over the file
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if opts.hotelsFile != "" {
		cfg.Storage.HotelsFile = opts.hotelsFile
	}
	if opts.bookingsFile != "" {
		cfg.Storage.BookingsFile = opts.bookingsFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Check the data files up front
	if cfg.Storage.Driver == config.DriverJSON {
		if err := requireFile("hotels", cfg.Storage.HotelsFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := requireFile("bookings", cfg.Storage.BookingsFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting hotel manager (storage=%s, config=%s)", cfg.Storage.Driver, opts.configPath)

	// Cancel on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		metricsCollector.Serve(ctx, cfg.Metrics.HTTPPort, cfg.Metrics.Path, log)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Initialize repositories for the configured driver
	storageLog := log.With("storage", cfg.Storage.Driver)

	var (
		hotels   availabilityService.HotelRepository
		bookings availabilityService.BookingRepository
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		hotelRepository := hotelRepo.NewRepository(db, storageLog)
		bookingRepository := bookingRepo.NewRepository(db, storageLog)
		if metricsCollector != nil {
			hotelRepository.WithObserver(metricsCollector)
			bookingRepository.WithObserver(metricsCollector)
		}
		hotels, bookings = hotelRepository, bookingRepository

	default:
		hotelRepository := hotelRepo.NewFileRepository(cfg.Storage.HotelsFile, storageLog)
		bookingRepository := bookingRepo.NewFileRepository(cfg.Storage.BookingsFile, storageLog)
		if metricsCollector != nil {
			hotelRepository.WithObserver(metricsCollector)
			bookingRepository.WithObserver(metricsCollector)
		}
		hotels, bookings = hotelRepository, bookingRepository
	}

	// Initialize availability engine
	engine := availabilityService.NewService(hotels, bookings, availabilityService.RealClock{}, log)

	// Initialize commands, in dispatch order
	var (
		availability commands.Command = availabilityCommand.NewCommand(engine, log)
		search       commands.Command = searchCommand.NewCommand(engine, cfg.Search.MaxDays, log)
	)
	if metricsCollector != nil {
		availability = middleware.Instrument(availabilityCommand.Name, availability, metricsCollector)
		search = middleware.Instrument(searchCommand.Name, search, metricsCollector)
	}

	// Run the input loop until Exit, end of input or a signal
	dispatcher := commands.NewDispatcher(availability, search)
	loop := console.NewLoop(console.NewStd(os.Stdin, os.Stdout, os.Stderr), dispatcher, log)

	done := make(chan error, 1)
	go func() {
		done <- loop.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Input loop failed: %v", err)
			return
		}
	case <-ctx.Done():
		log.Info("Interrupted, shutting down")
	}

	log.Info("Hotel manager stopped")
}
