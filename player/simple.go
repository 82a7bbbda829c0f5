package player

import (
	"war/game"
	"war/utils"
)

type simple struct {
	hand     []game.Card
	shuffler game.Shuffler
}

// NewSimple draws from the front and puts each batch of winnings at the back in random order.
func NewSimple(hand []game.Card, shuffler game.Shuffler) Player {
	return &simple{
		hand:     append([]game.Card(nil), hand...),
		shuffler: shuffler,
	}
}

func (p *simple) HasFewerThan(n int) bool {
	return len(p.hand) < n
}

func (p *simple) Draw() game.Card {
	card, rest := popFront(p.hand)
	p.hand = rest
	return card
}

func (p *simple) DrawWarCard() game.Card {
	return p.Draw()
}

func (p *simple) AbsorbWinnings(cards []game.Card) {
	p.hand = append(p.hand, utils.Shuffled(p.shuffler, cards)...)
}

func (p *simple) Count() int {
	return len(p.hand)
}

func (p *simple) Cards() []game.Card {
	return append([]game.Card(nil), p.hand...)
}

func (p *simple) Strategy() Strategy {
	return Simple
}
