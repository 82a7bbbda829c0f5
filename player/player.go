package player

import (
	"errors"
	"fmt"
	"strings"
	"war/game"
)

// ErrEmptyHand is the panic value raised when a caller draws without checking HasFewerThan first.
var ErrEmptyHand = errors.New("draw from empty hand")

// Player owns a hand and decides the order its cards come out in.
type Player interface {
	// HasFewerThan reports whether the player holds strictly fewer than n cards in total
	HasFewerThan(n int) bool
	Draw() game.Card
	// DrawWarCard draws a face-down card during a war
	DrawWarCard() game.Card
	AbsorbWinnings(cards []game.Card)
	Count() int
	// Cards returns a copy of everything the player holds, in draw order
	Cards() []game.Card
	Strategy() Strategy
}

type Strategy int

const (
	Simple Strategy = iota
	WithDiscard
	Cheat
)

var Strategies = []Strategy{Simple, WithDiscard, Cheat}

func (s Strategy) String() string {
	switch s {
	case Simple:
		return "simple"
	case WithDiscard:
		return "discard"
	case Cheat:
		return "cheat"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// New wraps a starting hand in the given strategy. The shuffler is only used by variants that randomize.
func New(strategy Strategy, hand []game.Card, shuffler game.Shuffler) Player {
	switch strategy {
	case Simple:
		return NewSimple(hand, shuffler)
	case WithDiscard:
		return NewWithDiscard(hand, shuffler)
	case Cheat:
		return NewCheat(hand)
	default:
		panic(fmt.Sprintf("unexpected strategy %v", strategy))
	}
}

func popFront(hand []game.Card) (game.Card, []game.Card) {
	if len(hand) == 0 {
		panic(ErrEmptyHand)
	}
	return hand[0], hand[1:]
}
