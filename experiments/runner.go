package experiments

import (
	"sync"
	"war/engine"
	"war/experiments/metrics"
	"war/game"

	"github.com/rs/zerolog/log"
)

// RunMatchup plays cfg.Trials independent games. Every game gets its own seed drawn up front from
// cfg.Seed, so the records do not depend on the number of workers. Record IDs start after firstID.
func RunMatchup(cfg Config, matchup Matchup, rules game.Rules, firstID int) ([]metrics.GameRecord, metrics.Summary) {
	seeds := make([]uint64, cfg.Trials)
	rng := game.NewRand(cfg.Seed)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}

	results := make([]engine.FinalResult, cfg.Trials)
	task := make(chan int, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < max(cfg.Workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for trial := range task {
				results[trial] = playGame(matchup, rules, cfg.MaxTurns, seeds[trial])
			}
		}()
	}
	wg.Wait()

	records := make([]metrics.GameRecord, len(results))
	for i, result := range results {
		records[i] = metrics.GameRecord{
			ID:         firstID + i + 1,
			Matchup:    matchup.String(),
			Seed:       seeds[i],
			Winner:     result.Winner,
			Rules:      result.Rules,
			GameMetric: result.Metric,
		}
	}

	return records, Summarize(matchup.String(), results)
}

func playGame(matchup Matchup, rules game.Rules, maxTurns int, seed uint64) engine.FinalResult {
	e := engine.NewGame(matchup.Player1, matchup.Player2, game.NewRand(seed),
		engine.WithRules(rules),
		engine.WithMaxTurns(maxTurns),
		engine.WithCollector(metrics.NewCollector()),
	)
	result := e.Run()
	if result.Winner == game.None {
		log.Warn().Msgf("game with seed %d stopped after %d turns without a winner", seed, result.Turns)
	}
	return result
}

// Summarize reduces game results. With no games every statistic is zero.
func Summarize(matchup string, results []engine.FinalResult) metrics.Summary {
	s := metrics.Summary{Matchup: matchup, Games: len(results)}
	totalTurns := 0
	for _, r := range results {
		switch r.Winner {
		case game.Player1:
			s.Player1Wins++
		case game.Player2:
			s.Player2Wins++
		default:
			s.Stalemates++
		}
		totalTurns += r.Turns
		if r.Turns > s.MaxTurns {
			s.MaxTurns = r.Turns
			s.MaxTurnsWinner = r.Winner
		}
		s.MaxDepth = max(s.MaxDepth, r.MaxDepth)
		s.TotalWars += r.Wars
	}
	if len(results) > 0 {
		s.AverageTurns = float64(totalTurns) / float64(len(results))
	}
	return s
}
