package engine

import (
	"testing"
	"war/game"
	"war/player"

	"github.com/stretchr/testify/require"
)

// keepOrder leaves every batch as it is, which makes a simple player draw in a scripted order
type keepOrder struct{}

func (keepOrder) Shuffle(n int, swap func(i, j int)) {}

func scripted(ranks ...game.Rank) player.Player {
	hand := make([]game.Card, len(ranks))
	for i, r := range ranks {
		hand[i] = game.Card{Rank: r, Suit: game.Suit(i % 4)}
	}
	return player.NewSimple(hand, keepOrder{})
}

func tiedPot() []game.Card {
	return []game.Card{{Rank: 8, Suit: game.Heart}, {Rank: 8, Suit: game.Spade}}
}

func TestResolve(t *testing.T) {
	t.Run("deciding at depth one with the classic rule", func(t *testing.T) {
		p1 := scripted(2, 9)
		p2 := scripted(3, 4)

		got := Resolve(p1, p2, tiedPot(), 1, game.NewClassicRules())

		require.Equal(t, game.Player1, got.Winner, "Higher face-up card should win")
		require.Equal(t, 1, got.Depth)
		require.Len(t, got.Pot, 2+1*(game.ClassicWarDrawCount+1)*2, "Pot should hold both rounds")
		require.True(t, p1.HasFewerThan(1))
		require.True(t, p2.HasFewerThan(1))
	})

	t.Run("recursing on a second tie with the standard rule", func(t *testing.T) {
		p1 := scripted(2, 2, 2, 7, 3, 3, 3, game.King, 5)
		p2 := scripted(4, 4, 4, 7, 5, 5, 5, 2, 6)

		got := Resolve(p1, p2, tiedPot(), 1, game.NewStandardRules())

		require.Equal(t, game.Player1, got.Winner)
		require.Equal(t, 2, got.Depth, "Second tie should go one level deeper")
		require.Len(t, got.Pot, 2+2*(game.StandardWarDrawCount+1)*2)
		require.Equal(t, 1, p1.Count(), "Unused cards should stay with the player")
		require.Equal(t, 1, p2.Count())
	})

	t.Run("drawing face-down cards before the face-up card, player by player", func(t *testing.T) {
		p1 := scripted(2, 9)
		p2 := scripted(3, 4)

		got := Resolve(p1, p2, tiedPot(), 1, game.NewClassicRules())

		ranks := []game.Rank{}
		for _, c := range got.Pot {
			ranks = append(ranks, c.Rank)
		}
		require.Equal(t, []game.Rank{8, 8, 2, 9, 3, 4}, ranks)
	})

	t.Run("losing when the second player cannot cover a round", func(t *testing.T) {
		p1 := scripted(2, 3, 4, 5)
		p2 := scripted(2, 3, 4)

		got := Resolve(p1, p2, tiedPot(), 1, game.NewStandardRules())

		require.Equal(t, game.Player1, got.Winner)
		require.Equal(t, 1, got.Depth)
		require.Len(t, got.Pot, 2, "No cards should be drawn")
		require.Equal(t, 3, p2.Count(), "Short player keeps its cards until the pot is settled")
	})

	t.Run("losing when the first player cannot cover a round", func(t *testing.T) {
		p1 := scripted()
		p2 := scripted(3, 5)

		got := Resolve(p1, p2, tiedPot(), 1, game.NewClassicRules())

		require.Equal(t, game.Player2, got.Winner)
		require.Len(t, got.Pot, 2)
	})

	t.Run("checking the second player first when both are short", func(t *testing.T) {
		got := Resolve(scripted(), scripted(), tiedPot(), 1, game.NewClassicRules())

		require.Equal(t, game.Player1, got.Winner)
	})

	t.Run("running out after a deeper tie", func(t *testing.T) {
		p1 := scripted(2, 7, 3)
		p2 := scripted(4, 7, 5, 6)

		got := Resolve(p1, p2, tiedPot(), 1, game.NewClassicRules())

		require.Equal(t, game.Player2, got.Winner, "Player without a full round should lose")
		require.Equal(t, 2, got.Depth, "Loss should be recorded at the depth it happened")
		require.Len(t, got.Pot, 2+1*(game.ClassicWarDrawCount+1)*2)
		require.Equal(t, 1, p1.Count())
	})

	t.Run("cheat burying its lowest cards", func(t *testing.T) {
		p1 := player.NewCheat([]game.Card{
			{Rank: game.Ace, Suit: game.Heart}, {Rank: 5, Suit: game.Club}, {Rank: 2, Suit: game.Heart},
			{Rank: game.Queen, Suit: game.Spade}, {Rank: 3, Suit: game.Diamond},
		})
		p2 := scripted(4, 4, 4, 10)

		got := Resolve(p1, p2, tiedPot(), 1, game.NewStandardRules())

		require.Equal(t, []game.Card{
			{Rank: 2, Suit: game.Heart}, {Rank: 3, Suit: game.Diamond}, {Rank: 5, Suit: game.Club},
			{Rank: game.Ace, Suit: game.Heart},
		}, got.Pot[2:6], "Cheat should sacrifice its lowest cards and show its highest")
		require.Equal(t, game.Player1, got.Winner)
		require.Equal(t, []game.Card{{Rank: game.Queen, Suit: game.Spade}}, p1.Cards())
	})
}
