package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, dir, file string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, file))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	writer, err := NewWriter(root, "trial")
	require.NoError(t, err)
	require.DirExists(t, writer.Dir())

	t.Run("agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 0, Kind: "random", Seed: 1},
			{ID: 1, Kind: "mcts", Playouts: 200, Exploration: 1.4, Seed: 7},
		}

		require.NoError(t, writer.WriteAgentConfigs(configs))

		rows := readCSV(t, writer.Dir(), "agent_configs.csv")
		require.Len(t, rows, 3, "header plus one row per config")
		require.Equal(t, []string{"id", "kind", "playouts", "exploration", "seed"}, rows[0])
		require.Equal(t, []string{"1", "mcts", "200", "1.4", "7"}, rows[2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
		records := []GameRecord{
			{
				ID:        "tie-breaker",
				Matchup:   1,
				Black:     1,
				White:     0,
				Winner:    "black",
				Moves:     42,
				StartTime: start,
				Duration:  1500 * time.Millisecond,
			},
		}

		require.NoError(t, writer.WriteGameRecords(records))

		rows := readCSV(t, writer.Dir(), "game_records.csv")
		require.Len(t, rows, 2)
		require.Equal(t,
			[]string{"tie-breaker", "1", "1", "0", "black", "42", "2025-03-14T09:26:53Z", "1.5s"},
			rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{
			{
				Game:      "tie-breaker",
				Step:      1,
				Side:      "black",
				Move:      "E5",
				Playouts:  200,
				TreeNodes: 3500,
				MaxDepth:  6,
				Duration:  20 * time.Millisecond,
			},
		}

		require.NoError(t, writer.WriteMoveRecords(records))

		rows := readCSV(t, writer.Dir(), "move_records.csv")
		require.Len(t, rows, 2)
		require.Equal(t,
			[]string{"tie-breaker", "1", "black", "E5", "200", "3500", "6", "20ms"},
			rows[1])
	})
}
