package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/shopsim/internal/config"
	"github.com/mamadbah2/shopsim/internal/repository/mongodb"
	"github.com/mamadbah2/shopsim/internal/repository/sheets"
	"github.com/mamadbah2/shopsim/internal/scheduler"
	"github.com/mamadbah2/shopsim/internal/service/demand"
	reportingsvc "github.com/mamadbah2/shopsim/internal/service/reporting"
	"github.com/mamadbah2/shopsim/internal/service/simulation"
	"github.com/mamadbah2/shopsim/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sinks []reportingsvc.Sink

	var mongoRepo *mongodb.MongoDBRepository
	if cfg.MongoDB.Enabled() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		mongoRepo, err = mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		sinks = append(sinks, mongoRepo)
	}

	var sheetSink *sheets.ReportSink
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sheetSink = sheets.NewReportSink(sheetsRepo)
		sinks = append(sinks, sheetSink)
	}

	reportingSvc := reportingsvc.NewService(logger.Named(baseLogger, "svc.reporting"), sinks...)

	engine, err := newEngine(cfg, logger.Named(baseLogger, "svc.simulation"))
	if err != nil {
		baseLogger.Fatal("failed to set up the shop", zap.Error(err))
	}

	baseLogger.Info("simulation starting",
		zap.String("run_id", reportingSvc.RunID()),
		zap.Int("days", cfg.Simulation.Days),
		zap.Uint64("seed", cfg.Demand.Seed),
		zap.Int("sinks", len(sinks)))

	if cfg.Autoplay.CronSchedule != "" {
		err = autoplay(ctx, cfg, engine, reportingSvc, logger.Named(baseLogger, "scheduler"))
	} else {
		g := &game{
			engine:      engine,
			reporter:    reportingSvc,
			in:          newPrompter(os.Stdin, os.Stdout),
			out:         os.Stdout,
			days:        cfg.Simulation.Days,
			interactive: cfg.Simulation.Interactive,
			logger:      baseLogger,
		}
		err = g.play(ctx)
	}
	if err != nil {
		baseLogger.Error("simulation stopped", zap.Error(err))
	}

	if mongoRepo != nil {
		listCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		reports, listErr := mongoRepo.ListRunReports(listCtx, reportingSvc.RunID())
		cancel()
		if listErr != nil {
			baseLogger.Warn("failed to read back run reports", zap.Error(listErr))
		} else {
			baseLogger.Info("run reports stored", zap.String("run_id", reportingSvc.RunID()), zap.Int("reports", len(reports)))
		}
	}

	if sheetSink != nil {
		readCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		rows, readErr := sheetSink.CountRunRows(readCtx, reportingSvc.RunID())
		cancel()
		if readErr != nil {
			baseLogger.Warn("failed to read back sheet rows", zap.Error(readErr))
		} else {
			baseLogger.Info("run rows in sheet", zap.String("run_id", reportingSvc.RunID()), zap.Int("rows", rows))
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

func newEngine(cfg *config.Config, log *zap.Logger) (*simulation.Engine, error) {
	generator, err := demand.NewGenerator(demand.Config{
		MinOrdersPerDay:     cfg.Demand.MinOrdersPerDay,
		MaxOrdersPerDay:     cfg.Demand.MaxOrdersPerDay,
		MinQuantityPerOrder: cfg.Demand.MinQuantityPerOrder,
		MaxQuantityPerOrder: cfg.Demand.MaxQuantityPerOrder,
		Seed:                cfg.Demand.Seed,
	})
	if err != nil {
		return nil, err
	}

	products := simulation.DefaultCatalog().Products()
	shop, err := simulation.NewStockedShop(simulation.ShopSetup{
		Capacity:       cfg.Simulation.Capacity,
		Budget:         cfg.Simulation.Budget,
		InitialStock:   cfg.Simulation.InitialStock,
		StrictCapacity: cfg.Simulation.StrictCapacity,
	}, products)
	if err != nil {
		return nil, err
	}

	return simulation.NewEngine(shop, products, generator, log), nil
}

func autoplay(ctx context.Context, cfg *config.Config, engine *simulation.Engine, reporter *reportingsvc.Service, log *zap.Logger) error {
	onDay := func(outcome simulation.DayOutcome) {
		printOutcome(os.Stdout, outcome)
	}

	sched := scheduler.NewScheduler(cfg.Autoplay, cfg.Simulation.Days, engine, reporter, onDay, log)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	select {
	case <-sched.Done():
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	fmt.Fprintln(os.Stdout, reportingsvc.FormatFinal(engine.Snapshot(), engine.GameOver()))
	return sched.Err()
}
