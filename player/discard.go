package player

import (
	"war/game"
	"war/utils"
)

type withDiscard struct {
	hand     []game.Card
	discard  []game.Card
	shuffler game.Shuffler
}

// NewWithDiscard keeps winnings on a discard pile that is only shuffled back in once the hand runs dry.
func NewWithDiscard(hand []game.Card, shuffler game.Shuffler) Player {
	return &withDiscard{
		hand:     append([]game.Card(nil), hand...),
		discard:  []game.Card{},
		shuffler: shuffler,
	}
}

func (p *withDiscard) HasFewerThan(n int) bool {
	return len(p.hand)+len(p.discard) < n
}

func (p *withDiscard) Draw() game.Card {
	if len(p.hand) == 0 {
		p.hand = append(p.hand, utils.Shuffled(p.shuffler, p.discard)...)
		p.discard = p.discard[:0]
	}
	card, rest := popFront(p.hand)
	p.hand = rest
	return card
}

func (p *withDiscard) DrawWarCard() game.Card {
	return p.Draw()
}

func (p *withDiscard) AbsorbWinnings(cards []game.Card) {
	p.discard = append(p.discard, cards...)
}

func (p *withDiscard) Count() int {
	return len(p.hand) + len(p.discard)
}

func (p *withDiscard) Cards() []game.Card {
	cards := append([]game.Card(nil), p.hand...)
	return append(cards, p.discard...)
}

func (p *withDiscard) Strategy() Strategy {
	return WithDiscard
}
