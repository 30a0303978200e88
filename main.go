// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"flight-seating/cmd"
	"flight-seating/internal/data/entity"
	"flight-seating/internal/data/repository"
	"flight-seating/internal/wire"
	"flight-seating/pkg/database"
	"flight-seating/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger = logger.With(zap.String("session_id", utils.GenerateSessionID()))
	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("seats_file", config.Seats.File),
		zap.Int("rows", config.Seats.Rows),
		zap.Int("cols", config.Seats.Cols),
		zap.Bool("debug", config.App.Debug),
	)

	// Every booking is saved as it happens; an interrupt only has to stop
	// the status server.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open seat storage
	store, err := database.InitStore(config.Seats)
	if err != nil {
		logger.Fatal("Failed to open seat storage", zap.Error(err))
	}

	repos := repository.NewRepository(store, config.Seats)

	grid, err := repos.Seat.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			fmt.Fprintf(os.Stderr, "Error: %s not found.\n", config.Seats.File)
		case errors.Is(err, entity.ErrCorruptData):
			fmt.Fprintf(os.Stderr, "Error: %s is not a valid %dx%d seat layout.\n",
				config.Seats.File, config.Seats.Rows, config.Seats.Cols)
		}
		logger.Fatal("Failed to load seats", zap.Error(err))
	}

	taken, total := grid.Counts()
	logger.Info("Seats loaded", zap.Int("taken", taken), zap.Int("total", total))

	// Wire all dependencies
	app := wire.Wiring(repos, grid, config, logger)

	var wg sync.WaitGroup
	if config.App.Port != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
				logger.Error("Status server stopped", zap.Error(err))
			}
		}()
	}

	// The menu blocks on stdin, so it runs aside while main waits for it or
	// for a signal.
	menuDone := make(chan error, 1)
	go func() {
		menuDone <- cmd.RunMenu(ctx, app.Menu, os.Stdin, os.Stdout, logger)
	}()

	select {
	case err := <-menuDone:
		if err != nil {
			logger.Error("Session aborted", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Interrupted, shutting down")
	}

	stop()
	wg.Wait()
}
