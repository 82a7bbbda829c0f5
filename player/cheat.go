package player

import (
	"war/game"

	"golang.org/x/exp/slices"
)

type cheat struct {
	hand []game.Card
}

// NewCheat never shuffles. It leads with its highest card and buries its lowest ones in a war.
func NewCheat(hand []game.Card) Player {
	return &cheat{
		hand: append([]game.Card(nil), hand...),
	}
}

func (p *cheat) HasFewerThan(n int) bool {
	return len(p.hand) < n
}

func (p *cheat) Draw() game.Card {
	slices.SortStableFunc(p.hand, func(a, b game.Card) int {
		return int(b.Rank) - int(a.Rank)
	})
	card, rest := popFront(p.hand)
	p.hand = rest
	return card
}

func (p *cheat) DrawWarCard() game.Card {
	slices.SortStableFunc(p.hand, func(a, b game.Card) int {
		return int(a.Rank) - int(b.Rank)
	})
	card, rest := popFront(p.hand)
	p.hand = rest
	return card
}

func (p *cheat) AbsorbWinnings(cards []game.Card) {
	p.hand = append(p.hand, cards...)
}

func (p *cheat) Count() int {
	return len(p.hand)
}

func (p *cheat) Cards() []game.Card {
	return append([]game.Card(nil), p.hand...)
}

func (p *cheat) Strategy() Strategy {
	return Cheat
}
