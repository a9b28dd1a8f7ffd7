// Package main is the entry point for the tripdesk demo runner.
// Its sole responsibility is wiring dependencies together, seeding the
// in-memory store, and printing the reports. No business logic belongs here.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/mfdias/tripdesk/internal/config"
	"github.com/mfdias/tripdesk/internal/repo"
	"github.com/mfdias/tripdesk/internal/seed"
	"github.com/mfdias/tripdesk/internal/service"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.Load,
			newLogger,

			repo.NewPersonRepo,
			repo.NewDestinationRepo,
			repo.NewCompanyRepo,
			repo.NewTransportTypeRepo,
			repo.NewTripRepo,
			repo.NewTicketRepo,
			repo.NewExcursionRepo,
			repo.NewPaymentRepo,

			service.NewPersonService,
			service.NewDestinationService,
			service.NewCompanyService,
			service.NewTransportService,
			service.NewTripService,
			service.NewTicketService,
			service.NewExcursionService,
			service.NewPaymentService,
			service.NewReportService,

			seed.New,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(run),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the process-wide structured logger. JSON handler
// writes machine-readable output suitable for log aggregators.
func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// run seeds the store and logs the derived reports on startup.
func run(
	lc fx.Lifecycle,
	cfg config.Config,
	logger *slog.Logger,
	seeder *seed.Seeder,
	trips *service.TripService,
	reports *service.ReportService,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := seeder.Run(ctx, seed.Params{
				Seed:   cfg.Seed,
				People: cfg.SeedPeople,
				Trips:  cfg.SeedTrips,
			}); err != nil {
				return err
			}
			return printReports(ctx, cfg, logger, trips, reports)
		},
	})
}

func printReports(ctx context.Context, cfg config.Config, logger *slog.Logger, trips *service.TripService, reports *service.ReportService) error {
	popular, err := reports.PopularDestinations(ctx, cfg.ReportLimit)
	if err != nil {
		return err
	}
	for _, row := range popular {
		logger.Info("popular destination", "destination", row.Destination.FullName(), "trips", row.Trips)
	}

	expensive, err := reports.MostExpensiveDestinations(ctx, cfg.ReportLimit)
	if err != nil {
		return err
	}
	for _, row := range expensive {
		logger.Info("expensive destination", "destination", row.Destination.FullName(), "average_spend", row.AverageSpend)
	}

	attractions, err := reports.PopularExcursions(ctx, cfg.ReportLimit)
	if err != nil {
		return err
	}
	for _, row := range attractions {
		logger.Info("popular excursion", "attraction", row.Attraction, "count", row.Count)
	}

	all, err := trips.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range all {
		finance, err := reports.TripFinance(ctx, t.ID)
		if err != nil {
			return err
		}
		logger.Info("trip finance",
			"trip", t.Title,
			"start", t.StartDate.Format(time.DateOnly),
			"total", finance.Total,
			"paid", finance.Paid,
			"outstanding", finance.Outstanding,
			"percent_paid", finance.PercentPaid,
		)
	}
	return nil
}
