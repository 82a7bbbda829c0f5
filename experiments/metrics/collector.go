package metrics

import (
	"time"
	"war/game"
)

type GameMetric struct {
	Turns      int
	Wars       int
	MaxDepth   int
	LargestPot int
	CardsWon1  int // cards awarded to Player1 over the game
	CardsWon2  int
	StartTime  time.Time
	Duration   time.Duration
}

// Collector observes a single game. A game owns its collector, so implementations need no locking.
type Collector interface {
	Start()
	AddTurn()
	AddWar(depth int)
	AddAward(winner game.Side, potSize int)
	Complete() GameMetric
}

type collector struct {
	startTime time.Time
	metric    GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.metric = GameMetric{StartTime: m.startTime}
}

func (m *collector) AddTurn() {
	m.metric.Turns++
}

func (m *collector) AddWar(depth int) {
	m.metric.Wars++
	m.metric.MaxDepth = max(m.metric.MaxDepth, depth)
}

func (m *collector) AddAward(winner game.Side, potSize int) {
	m.metric.LargestPot = max(m.metric.LargestPot, potSize)
	switch winner {
	case game.Player1:
		m.metric.CardsWon1 += potSize
	case game.Player2:
		m.metric.CardsWon2 += potSize
	}
}

func (m *collector) Complete() GameMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddTurn()                {}
func (m *dummyCollector) AddWar(depth int)        {}
func (m *dummyCollector) AddAward(game.Side, int) {}
func (m *dummyCollector) Complete() GameMetric    { return GameMetric{} }
