package utils

import "war/game"

// Shuffled returns a shuffled copy, the input slice is left untouched.
func Shuffled[T any](s game.Shuffler, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	s.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
