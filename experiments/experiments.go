package experiments

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/gamemaster"
	"nogo/searcher"
)

// Matchup pits two agent configurations against each other. Colors
// alternate between games so neither configuration keeps the first
// move.
type Matchup struct {
	A metrics.AgentConfig
	B metrics.AgentConfig
}

// Options control one experiment run.
type Options struct {
	Games  int    // Games per matchup
	OutDir string // Root directory for the CSV records
}

// Tally counts wins per agent configuration and for the first mover.
type Tally struct {
	Games     int
	Wins      map[int]int // Keyed by AgentConfig.ID
	BlackWins int
}

// Run plays every matchup for the configured number of games and
// stores agent configs, game records, and per-move records as CSV.
func Run(name string, configs []metrics.AgentConfig, matchups []Matchup, opts Options) (Tally, error) {
	if opts.Games <= 0 {
		return Tally{}, fmt.Errorf("experiments: games per matchup must be positive")
	}

	tally := Tally{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchups {
		log.Info().Msgf("starting matchup %d of %d between agent %d and agent %d...",
			mi+1, len(matchups), matchup.A.ID, matchup.B.ID)

		for i := 0; i < opts.Games; i++ {
			blackConfig, whiteConfig := matchup.A, matchup.B
			if i%2 == 1 { // Alternate the first move
				blackConfig, whiteConfig = whiteConfig, blackConfig
			}

			// Offset the seeds so repeat games differ
			result, err := runGame(blackConfig, whiteConfig, uint64(tally.Games))
			if err != nil {
				return Tally{}, fmt.Errorf("experiments: matchup %d game %d: %w", mi+1, i+1, err)
			}

			id := uuid.NewString()
			tally.Games++
			winnerConfig := whiteConfig
			if result.Winner == game.Black {
				winnerConfig = blackConfig
				tally.BlackWins++
			}
			tally.Wins[winnerConfig.ID]++

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:        id,
				Matchup:   mi + 1,
				Black:     blackConfig.ID,
				White:     whiteConfig.ID,
				Winner:    result.Winner.String(),
				Moves:     result.Moves,
				StartTime: result.StartTime,
				Duration:  result.Duration,
			})
			for _, record := range result.History {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:      id,
					Step:      record.Step,
					Side:      record.Side.String(),
					Move:      record.Move.Point.String(),
					Playouts:  record.Metrics.Playouts,
					TreeNodes: record.Metrics.TreeNodes,
					MaxDepth:  record.Metrics.MaxDepth,
					Duration:  record.Metrics.Duration,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner %v",
				mi+1, len(matchups), i+1, opts.Games, result.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchups))
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := store(name, opts.OutDir, configs, gameRecords, moveRecords); err != nil {
		return Tally{}, err
	}
	return tally, nil
}

func store(name, outDir string, configs []metrics.AgentConfig,
	gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("experiments: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("experiments: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("experiments: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("experiments: %w", err)
	}

	log.Info().Msgf("stored experiment records in %s", writer.Dir())
	return nil
}

// runGame plays one refereed game between two configured agents.
func runGame(blackConfig, whiteConfig metrics.AgentConfig, seedOffset uint64) (gamemaster.Result, error) {
	black, err := buildAgent(blackConfig, game.Black, seedOffset)
	if err != nil {
		return gamemaster.Result{}, err
	}
	white, err := buildAgent(whiteConfig, game.White, seedOffset)
	if err != nil {
		return gamemaster.Result{}, err
	}
	master, err := gamemaster.NewLocal(black, white)
	if err != nil {
		return gamemaster.Result{}, err
	}
	return master.Run()
}

func buildAgent(config metrics.AgentConfig, side game.Color, seedOffset uint64) (agent.Agent, error) {
	seed := config.Seed + seedOffset
	switch config.Kind {
	case "mcts":
		return agent.NewMCTS(side,
			searcher.WithPlayouts(config.Playouts),
			searcher.WithExploration(config.Exploration),
			searcher.WithSeed(seed),
			searcher.WithMetrics())
	case "random":
		return agent.NewRandom(side, seed)
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}
