package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/caro-engine/internal/caro"
	"github.com/rocketscienceinc/caro-engine/internal/config"
	"github.com/rocketscienceinc/caro-engine/internal/terminal"
	"github.com/rocketscienceinc/caro-engine/internal/ticker"
	"github.com/rocketscienceinc/caro-engine/internal/usecase"
)

const tickInterval = time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("Starting game", "log_level", conf.LogLevel)

	ui := terminal.New(logger)
	gameManager := usecase.NewGameManager(logger, caro.NewEngine(), ticker.New(logger, tickInterval), ui)

	managerErrCh := make(chan error, 1)
	go func() {
		managerErrCh <- gameManager.Run(ctx)
	}()

	uiErr := ui.Run(ctx, gameManager)
	cancel()

	if err := <-managerErrCh; err != nil {
		return fmt.Errorf("game manager error: %w", err)
	}

	if uiErr != nil {
		return fmt.Errorf("terminal error: %w", uiErr)
	}

	log.Info("Game closed")

	return nil
}
