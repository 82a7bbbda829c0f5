package game

import "golang.org/x/exp/rand"

const (
	DeckSize = 52
	HandSize = DeckSize / 2
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed generator so every game can own a reproducible stream.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewDeck builds every (rank, suit) pair and shuffles the result.
func NewDeck(s Shuffler) []Card {
	deck := make([]Card, 0, DeckSize)
	for rank := MinRank; rank <= MaxRank; rank++ {
		for _, suit := range Suits {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	s.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Split copies the first and second half of the deck into two starting hands.
func Split(deck []Card) ([]Card, []Card) {
	half := len(deck) / 2
	first := make([]Card, half)
	copy(first, deck[:half])
	second := make([]Card, len(deck)-half)
	copy(second, deck[half:])
	return first, second
}
