package experiments

import "nogo/experiments/metrics"

// DefaultExploration is the conventional UCT constant, sqrt(2) rounded
// to a friendlier number.
const DefaultExploration = 1.4

// RunStrengthExperiment pits a ladder of playout budgets against the
// random baseline. The win rates over the ladder show how strength
// scales with search effort.
func RunStrengthExperiment(games int, outDir string) (Tally, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}
	ladder := []metrics.AgentConfig{
		{ID: 1, Kind: "mcts", Playouts: 50, Exploration: DefaultExploration, Seed: 1},
		{ID: 2, Kind: "mcts", Playouts: 200, Exploration: DefaultExploration, Seed: 1},
		{ID: 3, Kind: "mcts", Playouts: 800, Exploration: DefaultExploration, Seed: 1},
	}

	matchups := []Matchup{}
	for _, config := range ladder {
		matchups = append(matchups, Matchup{A: config, B: baseline})
	}

	return Run("strength", append(ladder, baseline), matchups,
		Options{Games: games, OutDir: outDir})
}
