package engine

import (
	"war/experiments/metrics"
	"war/game"
)

// FinalResult summarises one finished game.
type FinalResult struct {
	Turns    int
	Winner   game.Side // game.None when the turn limit cut the game short
	MaxDepth int       // deepest war chain seen, 0 if no war happened
	Wars     int
	Rules    string
	Metric   metrics.GameMetric
}

type Option func(e *Engine)

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithMaxTurns caps the game length, zero keeps the game unbounded.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}
