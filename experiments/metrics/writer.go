package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"war/game"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	ID      int
	Matchup string
	Seed    uint64
	Winner  game.Side
	Rules   string
	GameMetric
}

// Summary is the reduction of every game played in one matchup.
type Summary struct {
	Matchup        string
	Games          int
	Player1Wins    int
	Player2Wins    int
	Stalemates     int
	AverageTurns   float64
	MaxTurns       int
	MaxTurnsWinner game.Side
	MaxDepth       int
	TotalWars      int
}

type Setup struct {
	RunID     string        `yaml:"runId"`
	Name      string        `yaml:"name"`
	Rules     string        `yaml:"rules"`
	Trials    int           `yaml:"trials"` // per matchup
	Workers   int           `yaml:"workers"`
	Seed      uint64        `yaml:"seed"`
	MaxTurns  int           `yaml:"maxTurns"`
	Matchups  []string      `yaml:"matchups"`
	StartTime time.Time     `yaml:"startTime"`
	EndTime   time.Time     `yaml:"endTime"`
	Duration  time.Duration `yaml:"duration"`
}

type Writer struct {
	RunID   string
	baseDir string
}

func NewWriter(outputDir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp and run ID
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(outputDir, name, timestamp+"-"+runID[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		RunID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	setup.RunID = w.RunID
	path := filepath.Join(w.baseDir, "setup.yaml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return encoder.Close()
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "seed", "rules", "winner", "turns", "wars", "max_depth", "largest_pot", "cards_won1", "cards_won2", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Matchup,
			strconv.FormatUint(record.Seed, 10),
			record.Rules,
			record.Winner.String(),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Wars),
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.LargestPot),
			strconv.Itoa(record.CardsWon1),
			strconv.Itoa(record.CardsWon2),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"matchup", "games", "player1_wins", "player2_wins", "stalemates", "average_turns", "max_turns", "max_turns_winner", "max_depth", "total_wars"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Matchup,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Player1Wins),
			strconv.Itoa(s.Player2Wins),
			strconv.Itoa(s.Stalemates),
			strconv.FormatFloat(s.AverageTurns, 'f', 2, 64),
			strconv.Itoa(s.MaxTurns),
			s.MaxTurnsWinner.String(),
			strconv.Itoa(s.MaxDepth),
			strconv.Itoa(s.TotalWars),
		})
	}
	return w.writeCSV("summary.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
