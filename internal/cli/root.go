// Package cli implements the fars command line.
package cli

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/BFavetto/fars/internal/adapter/csvfile"
	"github.com/BFavetto/fars/internal/adapter/mapplot"
	"github.com/BFavetto/fars/internal/config"
	"github.com/BFavetto/fars/internal/observability"
	"github.com/BFavetto/fars/internal/pipeline"
)

// RootOptions holds global flags for all commands. Empty values defer to
// the environment configuration.
type RootOptions struct {
	DataDir string
	MapDir  string
}

// app is built once per invocation in PersistentPreRunE.
type app struct {
	cfg      *config.Config
	registry *prometheus.Registry
	pipeline *pipeline.Pipeline
	canvas   *mapplot.Canvas
}

// NewRootCommand creates the root command for the fars CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "fars",
		Short: "Explore FARS fatal accident data",
		Long: `Load yearly FARS accident files (accident_<year>.csv.bz2), count
accidents per month across years, and plot one state's accidents on a map.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, opts)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.cfg == nil {
				return nil
			}
			return observability.WriteTextfile(a.cfg.MetricsTextfile, a.registry)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "directory holding accident_<year>.csv.bz2 files (default $FARS_DATA_DIR)")
	cmd.PersistentFlags().StringVar(&opts.MapDir, "map-dir", "", "directory for rendered maps (default $FARS_MAP_DIR)")

	cmd.AddCommand(NewFilenameCommand())
	cmd.AddCommand(NewSummarizeCommand(a))
	cmd.AddCommand(NewMapCommand(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return exitWith(ExitBadInput, "config", err)
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if opts.MapDir != "" {
		cfg.MapDir = opts.MapDir
	}

	logger := observability.NewLogger(cfg, cmd.ErrOrStderr()).With("run_id", uuid.NewString())
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	loader, err := csvfile.NewLoader(cfg.DataDir, cfg.CacheSize, metrics, logger)
	if err != nil {
		return exitWith(ExitDataErr, "loader", err)
	}
	canvas := mapplot.New(cfg.MapDir, cfg.MapWidth, cfg.MapHeight, logger)

	a.cfg = cfg
	a.registry = registry
	a.canvas = canvas
	a.pipeline = pipeline.New(loader, canvas, logger, metrics)
	return nil
}
