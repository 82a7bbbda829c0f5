package engine

import (
	"errors"
	"war/experiments/metrics"
	"war/game"
	"war/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

// ErrCardsNotConserved is the panic value raised when a game ends with a different set of cards than it was dealt.
var ErrCardsNotConserved = errors.New("cards not conserved")

type Engine struct {
	players  [2]player.Player
	dealt    map[game.Card]int
	rules    game.Rules
	maxTurns int
	metrics  metrics.Collector
}

// LocalEngine sets up a single game between two players, defaulting to the standard rules and no turn limit.
func LocalEngine(p1, p2 player.Player, options ...Option) *Engine {
	if p1 == nil || p2 == nil {
		panic("need two players")
	}
	e := &Engine{
		players: [2]player.Player{p1, p2},
		dealt:   holdings(p1, p2),
		rules:   game.NewStandardRules(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// NewGame deals a shuffled deck to the two strategies, the shuffler also drives their in-game shuffles.
func NewGame(strategy1, strategy2 player.Strategy, shuffler game.Shuffler, options ...Option) *Engine {
	hand1, hand2 := game.Split(game.NewDeck(shuffler))
	p1 := player.New(strategy1, hand1, shuffler)
	p2 := player.New(strategy2, hand2, shuffler)
	return LocalEngine(p1, p2, options...)
}

func (e *Engine) Player(side game.Side) player.Player {
	switch side {
	case game.Player1:
		return e.players[0]
	case game.Player2:
		return e.players[1]
	default:
		panic("unexpected side")
	}
}

// Run plays the game until a player runs out of cards or the turn limit is reached.
func (e *Engine) Run() FinalResult {
	p1, p2 := e.players[0], e.players[1]
	turns := 0
	wars := 0
	maxDepth := 0
	winner := game.None

	e.metrics.Start()

	for {
		if p1.HasFewerThan(1) {
			winner = game.Player2
			break
		}
		if p2.HasFewerThan(1) {
			winner = game.Player1
			break
		}
		if e.maxTurns > 0 && turns >= e.maxTurns {
			break
		}

		p1Card := p1.Draw()
		p2Card := p2.Draw()
		pot := []game.Card{p1Card, p2Card}

		switch {
		case p1Card.Rank > p2Card.Rank:
			e.award(game.Player1, pot)
		case p1Card.Rank < p2Card.Rank:
			e.award(game.Player2, pot)
		default:
			result := Resolve(p1, p2, pot, 1, e.rules)
			wars++
			maxDepth = max(maxDepth, result.Depth)
			e.metrics.AddWar(result.Depth)
			log.Trace().Msgf("war over %s at depth %d: %s takes %d cards", p1Card.Rank, result.Depth, result.Winner, len(result.Pot))
			e.award(result.Winner, result.Pot)
		}

		turns++
		e.metrics.AddTurn()
	}

	if !maps.Equal(e.dealt, holdings(p1, p2)) {
		panic(ErrCardsNotConserved)
	}

	if winner == game.None {
		log.Debug().Msgf("game stopped after %d turns without a winner", turns)
	} else {
		log.Debug().Msgf("game over after %d turns, winner: %s", turns, winner)
	}

	return FinalResult{
		Turns:    turns,
		Winner:   winner,
		MaxDepth: maxDepth,
		Wars:     wars,
		Rules:    e.rules.Name(),
		Metric:   e.metrics.Complete(),
	}
}

func (e *Engine) award(winner game.Side, pot []game.Card) {
	e.Player(winner).AbsorbWinnings(pot)
	e.metrics.AddAward(winner, len(pot))
}

func holdings(players ...player.Player) map[game.Card]int {
	held := make(map[game.Card]int, game.DeckSize)
	for _, p := range players {
		for _, card := range p.Cards() {
			held[card]++
		}
	}
	return held
}
