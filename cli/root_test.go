package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSimulate(t *testing.T) {
	t.Run("printing the statistics", func(t *testing.T) {
		out, err := execute(t, "simulate", "--trials", "10", "--seed", "5", "--log-level", "error")

		require.NoError(t, err)
		require.Contains(t, out, "simple-vs-discard (10 games)")
		for _, label := range []string{"P1 wins:", "P2 wins:", "average turns:", "longest game won by", "deepest war:"} {
			require.Contains(t, out, label)
		}
	})

	t.Run("running without a subcommand", func(t *testing.T) {
		out, err := execute(t, "-n", "3", "--seed", "5", "--p1", "cheat", "--p2", "simple", "--log-level", "error")

		require.NoError(t, err)
		require.Contains(t, out, "cheat-vs-simple (3 games)")
	})

	t.Run("rejecting an unknown strategy", func(t *testing.T) {
		_, err := execute(t, "simulate", "--p1", "bluff", "--log-level", "error")

		require.Error(t, err)
	})

	t.Run("rejecting an unknown log level", func(t *testing.T) {
		_, err := execute(t, "simulate", "--log-level", "loud")

		require.Error(t, err)
	})

	t.Run("reading a config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "war.yaml")
		content := "name: file\ntrials: 4\nseed: 8\nmatchups:\n  - player1: discard\n    player2: cheat\n  - player1: simple\n    player2: simple\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		out, err := execute(t, "simulate", "--config", path, "--trials", "2", "--out", dir, "--log-level", "error")

		require.NoError(t, err)
		require.Contains(t, out, "discard-vs-cheat (2 games)", "Explicit flags should override the file")
		require.Contains(t, out, "simple-vs-simple (2 games)")
		require.DirExists(t, filepath.Join(dir, "file"))
	})
}

func TestStrategies(t *testing.T) {
	out, err := execute(t, "strategies")

	require.NoError(t, err)
	require.Contains(t, out, "simple\ndiscard\ncheat\n")
	require.Contains(t, out, "standard (3 face down)")
}
