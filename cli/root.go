package cli

import (
	"fmt"
	"io"
	"os"
	"time"
	"war/experiments"
	"war/game"
	"war/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
	player1    string
	player2    string
	cfg        experiments.Config
}

// NewRootCmd builds the war command, running it without a subcommand simulates.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &options{cfg: experiments.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "war",
		Short: "Simulate the card game War between automated players",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulate(cmd, opts, out)
		},
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many games and print win and length statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulate(cmd, opts, out)
		},
	}
	for _, cmd := range []*cobra.Command{rootCmd, simulateCmd} {
		flags := cmd.Flags()
		flags.StringVarP(&opts.configPath, "config", "c", "", "YAML experiment file, flags override its values")
		flags.IntVarP(&opts.cfg.Trials, "trials", "n", opts.cfg.Trials, "Games per matchup")
		flags.IntVarP(&opts.cfg.Workers, "workers", "w", opts.cfg.Workers, "Games played in parallel")
		flags.Uint64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "Master seed, 0 picks one from the clock")
		flags.IntVar(&opts.cfg.MaxTurns, "max-turns", opts.cfg.MaxTurns, "Stop a game after this many turns, 0 for no limit")
		flags.StringVar(&opts.cfg.Rules, "rules", opts.cfg.Rules, "War rules: standard (3 face down) or classic (1 face down)")
		flags.StringVar(&opts.player1, "p1", opts.cfg.Matchups[0].Player1.String(), "Strategy of player 1")
		flags.StringVar(&opts.player2, "p2", opts.cfg.Matchups[0].Player2.String(), "Strategy of player 2")
		flags.StringVarP(&opts.cfg.OutputDir, "out", "o", "", "Directory for CSV and setup files, empty to skip")
	}

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(newStrategiesCmd(out))
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
	return nil
}

func simulate(cmd *cobra.Command, opts *options, out io.Writer) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	summaries, err := experiments.Run(cfg)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		printSummary(out, s)
	}
	return nil
}

// resolveConfig layers explicitly set flags over the config file, or over the defaults without one.
func resolveConfig(cmd *cobra.Command, opts *options) (experiments.Config, error) {
	cfg := opts.cfg
	if opts.configPath != "" {
		loaded, err := experiments.LoadConfig(opts.configPath)
		if err != nil {
			return cfg, err
		}
		flags := cmd.Flags()
		if flags.Changed("trials") {
			loaded.Trials = cfg.Trials
		}
		if flags.Changed("workers") {
			loaded.Workers = cfg.Workers
		}
		if flags.Changed("seed") {
			loaded.Seed = cfg.Seed
		}
		if flags.Changed("max-turns") {
			loaded.MaxTurns = cfg.MaxTurns
		}
		if flags.Changed("rules") {
			loaded.Rules = cfg.Rules
		}
		if flags.Changed("out") {
			loaded.OutputDir = cfg.OutputDir
		}
		if !flags.Changed("p1") && !flags.Changed("p2") {
			return loaded, nil
		}
		cfg = loaded
	}

	p1, err := player.ParseStrategy(opts.player1)
	if err != nil {
		return cfg, err
	}
	p2, err := player.ParseStrategy(opts.player2)
	if err != nil {
		return cfg, err
	}
	cfg.Matchups = []experiments.Matchup{{Player1: p1, Player2: p2}}
	return cfg, nil
}

func newStrategiesCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available player strategies and rules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range player.Strategies {
				fmt.Fprintln(out, s)
			}
			fmt.Fprintf(out, "rules: %s (%d face down), %s (%d face down)\n",
				game.StandardRulesName, game.StandardWarDrawCount, game.ClassicRulesName, game.ClassicWarDrawCount)
		},
	}
}
