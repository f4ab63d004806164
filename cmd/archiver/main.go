package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/goodtill-sales-archiver/infrastructure/archive"
	"github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill"
	"github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill/goodtillclient"
	"github.com/vfg2006/goodtill-sales-archiver/internal/api"
	"github.com/vfg2006/goodtill-sales-archiver/internal/config"
	"github.com/vfg2006/goodtill-sales-archiver/internal/scheduler"
	"github.com/vfg2006/goodtill-sales-archiver/internal/usecases/exporting"
	"github.com/vfg2006/goodtill-sales-archiver/internal/usecases/flattening"
	"github.com/vfg2006/goodtill-sales-archiver/pkg/utils"
)

var dateFlag string

var rootCmd = &cobra.Command{
	Use:           "archiver",
	Short:         "Daily Goodtill sales archiver for the Food and Bar tills",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, flatten and archive one day's sales (default: yesterday)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, exporter, err := setup()
		if err != nil {
			return err
		}

		day, err := resolveDay()
		if err != nil {
			return err
		}

		_, err = exporter.Export(cmd.Context(), day)
		return err
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the daily export scheduler with an operational API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, exporter, err := setup()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		syncService := scheduler.NewDailyExportSyncService(exporter, cfg)
		if err := syncService.Start(ctx); err != nil {
			return err
		}

		server, err := api.New(cfg, exporter, syncService)
		if err != nil {
			return err
		}

		return server.Run(ctx)
	},
}

func main() {
	configureLogger()

	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "target date in YYYY-MM-DD (defaults to yesterday)")
	rootCmd.AddCommand(runCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// setup loads and validates configuration and wires the export dependencies
func setup() (*config.Config, *exporting.Service, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	goodtillClient := goodtillclient.NewClient(cfg)
	integrator := goodtill.New(cfg, goodtillClient)
	flattener := flattening.NewService()
	csvArchive := archive.NewCSVArchive(cfg.Archive.Dir)

	return cfg, exporting.NewService(integrator, flattener, csvArchive), nil
}

func resolveDay() (time.Time, error) {
	if dateFlag == "" {
		return utils.Yesterday(), nil
	}

	day, err := utils.ParseDate(dateFlag)
	if err != nil {
		return time.Time{}, err
	}

	return *day, nil
}

// configureLogger sets the log format before anything else runs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
