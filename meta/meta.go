// meta/meta.go
package meta

// TRIALS defines the number of games played per matchup.
const TRIALS = 1_000

// GO_ROUTINES defines the number of goroutines playing games in parallel.
const GO_ROUTINES = 8

// MAX_TURNS caps a game in the CLI, 0 lets games run until a player is out of cards.
const MAX_TURNS = 100_000

// OUTPUT_DIR is where experiment results are written.
const OUTPUT_DIR = "results"
