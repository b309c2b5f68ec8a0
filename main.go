package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/experiments"
	"nogo/game"
	"nogo/gamemaster"
	"nogo/searcher"
)

func main() {
	cfg := defaultConfig()

	configPath := flag.String("config", "", "YAML configuration file")
	games := flag.Int("games", cfg.Games, "number of games to play")
	display := flag.Bool("display", cfg.Display, "render the board after every move")
	level := flag.String("level", cfg.Level, "log level (trace, debug, info, warn, error)")
	arena := flag.Bool("arena", false, "run the strength experiment instead of a series")
	outDir := flag.String("out", cfg.OutDir, "experiment output directory")
	blackKind := flag.String("black", cfg.Black.Kind, "black agent: mcts or random")
	whiteKind := flag.String("white", cfg.White.Kind, "white agent: mcts or random")
	playouts := flag.Int("playouts", cfg.Black.Playouts, "playout budget per decision for mcts agents")
	exploration := flag.Float64("c", cfg.Black.Exploration, "exploration weight for mcts agents")
	seed := flag.Uint64("seed", cfg.Black.Seed, "base random seed")
	flag.Parse()

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	// Explicit flags override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "display":
			cfg.Display = *display
		case "level":
			cfg.Level = *level
		case "out":
			cfg.OutDir = *outDir
		case "black":
			cfg.Black.Kind = *blackKind
		case "white":
			cfg.White.Kind = *whiteKind
		case "playouts":
			cfg.Black.Playouts = *playouts
			cfg.White.Playouts = *playouts
		case "c":
			cfg.Black.Exploration = *exploration
			cfg.White.Exploration = *exploration
		case "seed":
			cfg.Black.Seed = *seed
			cfg.White.Seed = *seed + 1
		}
	})

	setupLogging(cfg.Level)

	if *arena {
		runArena(cfg)
		return
	}
	runSeries(cfg)
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", level)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func runSeries(cfg Config) {
	render := newRenderer()
	blackWins := 0
	totalMoves := 0
	var thinkTime time.Duration
	thinkMoves := 0

	for i := 0; i < cfg.Games; i++ {
		black, err := buildAgent(cfg.Black, game.Black, uint64(i))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build the black agent")
		}
		white, err := buildAgent(cfg.White, game.White, uint64(i))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build the white agent")
		}
		master, err := gamemaster.NewLocal(black, white)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up the game")
		}
		if cfg.Display {
			master.Observer = func(board game.Board, record gamemaster.MoveRecord) {
				fmt.Println(render.Move(record))
				fmt.Print(render.Board(board))
			}
		}

		result, err := master.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
		if result.Winner == game.Black {
			blackWins++
		}
		totalMoves += result.Moves
		for _, record := range result.History {
			if record.Metrics.Playouts > 0 {
				thinkTime += record.Metrics.Duration
				thinkMoves++
			}
		}
		fmt.Println(render.Summary(i+1, result))
	}

	fmt.Println(render.SeriesSummary(cfg.Games, blackWins, totalMoves, thinkTime, thinkMoves))
}

func runArena(cfg Config) {
	tally, err := experiments.RunStrengthExperiment(cfg.Games, cfg.OutDir)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	render := newRenderer()
	fmt.Println(render.Tally(tally))
}

func buildAgent(settings AgentSettings, side game.Color, offset uint64) (agent.Agent, error) {
	seed := settings.Seed + offset
	switch settings.Kind {
	case "mcts":
		return agent.NewMCTS(side,
			searcher.WithPlayouts(settings.Playouts),
			searcher.WithExploration(settings.Exploration),
			searcher.WithSeed(seed),
			searcher.WithMetrics())
	case "random":
		return agent.NewRandom(side, seed)
	}
	return nil, fmt.Errorf("unknown agent kind %q", settings.Kind)
}
