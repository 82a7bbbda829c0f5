package engine

import (
	"war/game"
	"war/player"
)

// WarResult threads the growing pot through a chain of wars.
type WarResult struct {
	Pot    []game.Card
	Winner game.Side
	Depth  int
}

// Resolve settles a tie. Each round both players put rules.WarDrawCount() cards face down and one
// face up, the higher face-up card takes the whole pot and another tie recurses one level deeper.
// A player who cannot cover a full round loses the war at the current depth.
func Resolve(p1, p2 player.Player, pot []game.Card, depth int, rules game.Rules) WarResult {
	faceDown := rules.WarDrawCount()

	if p2.HasFewerThan(faceDown + 1) {
		return WarResult{Pot: pot, Winner: game.Player1, Depth: depth}
	}
	if p1.HasFewerThan(faceDown + 1) {
		return WarResult{Pot: pot, Winner: game.Player2, Depth: depth}
	}

	pot = append(pot, drawRound(p1, faceDown)...)
	p1Up := pot[len(pot)-1]
	pot = append(pot, drawRound(p2, faceDown)...)
	p2Up := pot[len(pot)-1]

	switch {
	case p1Up.Rank > p2Up.Rank:
		return WarResult{Pot: pot, Winner: game.Player1, Depth: depth}
	case p1Up.Rank < p2Up.Rank:
		return WarResult{Pot: pot, Winner: game.Player2, Depth: depth}
	default:
		return Resolve(p1, p2, pot, depth+1, rules)
	}
}

// drawRound returns the face-down cards followed by the face-up card.
func drawRound(p player.Player, faceDown int) []game.Card {
	cards := make([]game.Card, 0, faceDown+1)
	for i := 0; i < faceDown; i++ {
		cards = append(cards, p.DrawWarCard())
	}
	return append(cards, p.Draw())
}
