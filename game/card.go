package game

import (
	"fmt"
	"strconv"
)

type Suit int

const (
	Heart   Suit = iota // 0
	Spade               // 1
	Diamond             // 2
	Club                // 3
)

var Suits = []Suit{Heart, Spade, Diamond, Club}

func (s Suit) String() string {
	switch s {
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

type Rank int

const (
	MinRank Rank = 2
	Jack    Rank = 11
	Queen   Rank = 12
	King    Rank = 13
	Ace     Rank = 14
	MaxRank      = Ace
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is a plain value, two cards are the same card iff rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
