package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/tui"
)

var (
	flagConfig  string
	flagSpeed   int
	flagSeed    int64
	flagLogFile string
	flagEmpty   bool
)

var rootCmd = &cobra.Command{
	Use:   "campusnav",
	Short: "Interactive campus map editor with BFS/DFS route playback",
	Long: `campusnav - an interactive terminal campus map.

Place buildings with the mouse, connect them with weighted walkways,
close walkways for construction, mark them non-accessible, and watch
BFS or DFS explore the map live while searching for a route.

Configuration is read from the OS config directory
(e.g. ~/.config/campusnav/config.yaml on Linux); every value has a
sensible default and flags override the file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: OS config dir)")
	rootCmd.Flags().IntVar(&flagSpeed, "speed", 0, "animation step interval in milliseconds (overrides config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "seed for weight randomization (overrides config)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "append structured logs to this file (overrides config)")
	rootCmd.Flags().BoolVar(&flagEmpty, "empty", false, "start with an empty map instead of the demo campus")
}

func run(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flagSpeed > 0 {
		cfg.AnimationDelayMs = flagSpeed
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	var g *core.Graph
	if flagEmpty {
		g = core.NewGraph(core.WithSeed(cfg.Seed))
	} else {
		if g, err = builder.Demo(core.WithSeed(cfg.Seed)); err != nil {
			return err
		}
	}
	log.Info("starting editor", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "config", path)

	return tui.Run(g, cfg, log)
}

// newLogger opens a text slog writing to the given file, or a no-op logger
// when no file is configured. Logging to the terminal would fight the
// full-screen UI for the same cells.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { _ = f.Close() }, nil
}
