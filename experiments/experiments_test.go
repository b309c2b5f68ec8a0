package experiments

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"nogo/agent"
	"nogo/experiments/metrics"
	"nogo/game"
)

func TestRun(t *testing.T) {
	t.Run("plays and records every matchup", func(t *testing.T) {
		outDir := t.TempDir()
		searcherConfig := metrics.AgentConfig{ID: 1, Kind: "mcts", Playouts: 10, Exploration: 1.4, Seed: 3}
		baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 3}
		matchups := []Matchup{{A: searcherConfig, B: baseline}}

		tally, err := Run("smoke", []metrics.AgentConfig{searcherConfig, baseline}, matchups,
			Options{Games: 2, OutDir: outDir})

		require.NoError(t, err)
		require.Equal(t, 2, tally.Games)
		wins := tally.Wins[searcherConfig.ID] + tally.Wins[baseline.ID]
		require.Equal(t, 2, wins, "every game has exactly one winner")
		require.LessOrEqual(t, tally.BlackWins, 2)

		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			found, err := filepath.Glob(filepath.Join(outDir, "smoke", "*", file))
			require.NoError(t, err)
			require.Len(t, found, 1, "%s should be stored once", file)
		}
	})

	t.Run("rejects a non-positive game count", func(t *testing.T) {
		_, err := Run("smoke", nil, nil, Options{Games: 0, OutDir: t.TempDir()})
		require.Error(t, err)
	})

	t.Run("rejects an unknown agent kind", func(t *testing.T) {
		bogus := metrics.AgentConfig{ID: 1, Kind: "alphabeta"}
		matchups := []Matchup{{A: bogus, B: bogus}}

		_, err := Run("smoke", []metrics.AgentConfig{bogus}, matchups,
			Options{Games: 1, OutDir: t.TempDir()})

		require.ErrorContains(t, err, "unknown agent kind")
	})
}

func TestBuildAgent(t *testing.T) {
	t.Run("dispatches on the agent kind", func(t *testing.T) {
		random, err := buildAgent(metrics.AgentConfig{Kind: "random", Seed: 1}, game.White, 0)
		require.NoError(t, err)
		require.IsType(t, &agent.Random{}, random)

		searching, err := buildAgent(metrics.AgentConfig{
			Kind: "mcts", Playouts: 10, Exploration: 1.4, Seed: 1,
		}, game.White, 0)
		require.NoError(t, err)
		require.IsType(t, &agent.MCTS{}, searching)
	})

	t.Run("is deterministic for one seed and offset", func(t *testing.T) {
		config := metrics.AgentConfig{ID: 1, Kind: "mcts", Playouts: 10, Exploration: 1.4, Seed: 5}

		first, err := buildAgent(config, game.Black, 2)
		require.NoError(t, err)
		second, err := buildAgent(config, game.Black, 2)
		require.NoError(t, err)

		moveA, okA, _ := first.ChooseMove(game.Board{})
		moveB, okB, _ := second.ChooseMove(game.Board{})
		require.True(t, okA)
		require.True(t, okB)
		require.Equal(t, moveA, moveB, "equal seeds and offsets must reproduce the decision")
	})
}
