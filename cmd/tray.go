package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mj1618/blanqr/internal/app"
	"github.com/mj1618/blanqr/internal/config"
	"github.com/mj1618/blanqr/internal/logging"
	"github.com/mj1618/blanqr/internal/platform"
)

// newProvider is replaced in tests.
var newProvider = platform.NewProvider

func runTray(cmd *cobra.Command, args []string) error {
	cfg, existed, loadErr := config.Load()

	dir, _ := config.Dir()
	log, closeLog, logErr := logging.New(logging.OptionsFromEnv(dir))
	defer closeLog()
	if logErr != nil {
		cmd.PrintErrln("blanqr: logging disabled:", logErr)
	}
	log.Info("starting", zap.String("version", cmd.Root().Version))
	if loadErr != nil {
		log.Warn("config unreadable, using defaults", zap.Error(loadErr))
	}

	provider, err := newProvider()
	if err != nil {
		log.Error("no platform backend", zap.Error(err))
		return err
	}

	shell, err := app.New(app.Options{
		Provider: provider,
		Config:   cfg,
		// An unreadable file is not a first run.
		FirstRun: !existed && loadErr == nil,
		Logger:   log,
	})
	if err != nil {
		log.Error("failed to build shell", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if err := shell.Run(ctx); err != nil {
		log.Error("shell failed", zap.Error(err))
		return err
	}
	return nil
}
