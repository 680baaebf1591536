package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deskpal/deskpal/config"
	deskpallogger "github.com/deskpal/deskpal/logger"
	"github.com/deskpal/deskpal/notify"
	"github.com/deskpal/deskpal/server"
	"github.com/deskpal/deskpal/setup"
	"github.com/deskpal/deskpal/tools"
	"github.com/deskpal/deskpal/tools/schemas"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command-line flags
	var (
		configPath = flag.String("config", config.GetConfigPath(), "Path to config file")
		logFile    = flag.String("logfile", "", "Path to log file. Overrides the configured path")
		pretty     = flag.Bool("pretty", false, "Pretty console output to stderr instead of a log file")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logPath := cfg.Log.File
	if *logFile != "" {
		logPath = *logFile
	}
	usePretty := *pretty || cfg.Log.Pretty
	if usePretty {
		logPath = ""
	}
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	log, err := deskpallogger.InitWithOptions(logPath, usePretty)
	if err != nil {
		return err
	}

	// Best effort: the server runs unbranded when setup cannot complete.
	if err := setup.EnsureAppBundle(log); err != nil {
		log.Warn().Err(err).Msg("Notifier branding setup failed; continuing unbranded")
	}

	transmitter := notify.SelectTransmitter(cfg, log)
	icons := notify.NewIconResolver(cfg.Notifier.IconDir, cfg.ClientIcons, log)

	registry := tools.NewRegistry(log)
	registry.RegisterNotificationTools(transmitter, icons, cfg)

	srv, err := server.New(registry, schemas.All(), version, log)
	if err != nil {
		return err
	}

	return srv.ServeStdio()
}
