package experiments

import (
	"fmt"
	"os"
	"time"
	"war/experiments/metrics"
	"war/game"
	"war/meta"
	"war/player"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Matchup struct {
	Player1 player.Strategy `yaml:"player1"`
	Player2 player.Strategy `yaml:"player2"`
}

func (m Matchup) String() string {
	return fmt.Sprintf("%s-vs-%s", m.Player1, m.Player2)
}

type Config struct {
	Name      string    `yaml:"name"`
	Trials    int       `yaml:"trials"` // per matchup
	Workers   int       `yaml:"workers"`
	Seed      uint64    `yaml:"seed"` // 0 picks a seed from the clock
	MaxTurns  int       `yaml:"maxTurns"`
	Rules     string    `yaml:"rules"`
	Matchups  []Matchup `yaml:"matchups"`
	OutputDir string    `yaml:"outputDir"` // empty skips writing results
}

// DefaultConfig pits the shuffling player against the discard pile player.
func DefaultConfig() Config {
	return Config{
		Name:     "war",
		Trials:   meta.TRIALS,
		Workers:  meta.GO_ROUTINES,
		MaxTurns: meta.MAX_TURNS,
		Rules:    game.StandardRulesName,
		Matchups: []Matchup{{Player1: player.Simple, Player2: player.WithDiscard}},
	}
}

// LoadConfig reads a YAML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Trials < 0 {
		return fmt.Errorf("trials must not be negative, got %d", c.Trials)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("max turns must not be negative, got %d", c.MaxTurns)
	}
	if len(c.Matchups) == 0 {
		return fmt.Errorf("need at least one matchup")
	}
	if _, err := game.NewRules(c.Rules); err != nil {
		return err
	}
	return nil
}

// Run plays every matchup and, when an output directory is set, stores the records and summaries.
func Run(cfg Config) ([]metrics.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	rules, err := game.NewRules(cfg.Rules)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log.Info().Msgf("starting %s experiment with %s rules, seed %d...", cfg.Name, rules.Name(), cfg.Seed)

	summaries := []metrics.Summary{}
	gameRecords := []metrics.GameRecord{}
	for mi, matchup := range cfg.Matchups {
		log.Info().Msgf("starting matchup %d of %d: %s...", mi+1, len(cfg.Matchups), matchup)

		records, summary := RunMatchup(cfg, matchup, rules, len(gameRecords))
		summaries = append(summaries, summary)
		gameRecords = append(gameRecords, records...)

		log.Info().Msgf("completed matchup %d of %d: player1 won %d, player2 won %d, stalemates %d",
			mi+1, len(cfg.Matchups), summary.Player1Wins, summary.Player2Wins, summary.Stalemates)
	}
	end := time.Now()

	log.Info().Msgf("completed %s experiment in %s", cfg.Name, end.Sub(start))

	if cfg.OutputDir == "" {
		return summaries, nil
	}
	dir, err := store(cfg, start, end, gameRecords, summaries)
	if err != nil {
		return summaries, err
	}
	log.Info().Msgf("stored results in %s", dir)
	return summaries, nil
}

func store(cfg Config, start, end time.Time, records []metrics.GameRecord, summaries []metrics.Summary) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	matchups := make([]string, len(cfg.Matchups))
	for i, m := range cfg.Matchups {
		matchups[i] = m.String()
	}
	err = writer.WriteSetup(metrics.Setup{
		Name:      cfg.Name,
		Rules:     cfg.Rules,
		Trials:    cfg.Trials,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		MaxTurns:  cfg.MaxTurns,
		Matchups:  matchups,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}

	if err := writer.WriteGameRecords(records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	return writer.Dir(), nil
}
