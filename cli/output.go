package cli

import (
	"fmt"
	"io"
	"war/experiments/metrics"
)

func printSummary(w io.Writer, s metrics.Summary) {
	fmt.Fprintf(w, "%s (%d games)\n", s.Matchup, s.Games)
	fmt.Fprintf(w, "  P1 wins:           %d\n", s.Player1Wins)
	fmt.Fprintf(w, "  P2 wins:           %d\n", s.Player2Wins)
	if s.Stalemates > 0 {
		fmt.Fprintf(w, "  stalemates:        %d\n", s.Stalemates)
	}
	fmt.Fprintf(w, "  average turns:     %.2f\n", s.AverageTurns)
	fmt.Fprintf(w, "  longest game:      %d turns\n", s.MaxTurns)
	fmt.Fprintf(w, "  longest game won by %s\n", s.MaxTurnsWinner)
	fmt.Fprintf(w, "  deepest war:       %d\n", s.MaxDepth)
}
