package metrics

import "time"

// AgentConfig describes one agent entering an experiment.
type AgentConfig struct {
	ID          int
	Kind        string // "mcts" or "random"
	Playouts    int
	Exploration float64
	Seed        uint64
}

// GameRecord stores the outcome of one experiment game.
type GameRecord struct {
	ID        string // UUID
	Matchup   int
	Black     int // AgentConfig.ID
	White     int // AgentConfig.ID
	Winner    string
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// MoveRecord stores the per-move search metrics of one game.
type MoveRecord struct {
	Game      string // GameRecord.ID
	Step      int
	Side      string
	Move      string
	Playouts  int64
	TreeNodes int
	MaxDepth  int
	Duration  time.Duration
}
