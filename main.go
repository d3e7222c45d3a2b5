package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/paologalligit/showtime/config"
	"github.com/paologalligit/showtime/entities"
	"github.com/paologalligit/showtime/logger"
	"github.com/paologalligit/showtime/menu"
	"github.com/paologalligit/showtime/persistence"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file (default: ./showtime.yaml if present)")
	inspect := flag.String("inspect", "", "Print the saved report for a movie title or artifact key and exit")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(os.Stderr, &logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		RunID:  uuid.NewString(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}

	status := run(context.Background(), cfg, log, *inspect)
	_ = log.Sync()
	os.Exit(status)
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, inspect string) int {
	store, closeStore, err := persistence.Open(ctx, cfg.StoreOptions())
	if err != nil {
		log.Error("failed to open store", zap.String("store", cfg.Store), zap.Error(err))
		return 1
	}
	defer closeStore()

	if inspect != "" {
		theatre, err := store.LoadTheatre(ctx, inspect)
		if err != nil {
			log.Error("failed to load theatre", zap.String("key", inspect), zap.Error(err))
			return 1
		}
		if err := theatre.WriteReport(os.Stdout); err != nil {
			log.Error("failed to write report", zap.Error(err))
			return 1
		}
		return 0
	}

	lineup, err := entities.NewLineup(cfg.Seeds())
	if err != nil {
		log.Error("failed to build lineup", zap.Error(err))
		return 1
	}
	log.Info("starting session",
		zap.String("store", cfg.Store),
		zap.String("data_dir", cfg.DataDir),
		zap.Int("theatres", lineup.Len()),
		zap.Bool("ticket_qr", cfg.TicketQR),
	)

	m := menu.New(&menu.Options{
		In:       os.Stdin,
		Out:      os.Stdout,
		Lineup:   lineup,
		Logger:   log,
		TicketQR: cfg.TicketQR,
	})
	status := 0
	if err := m.Run(ctx); err != nil {
		log.Error("menu stopped", zap.Error(err))
		status = 1
	}

	if err := persistence.SaveAll(ctx, store, lineup.Theatres(), log); err != nil {
		log.Error("failed to save theatres", zap.Error(err))
		return 1
	}
	return status
}
