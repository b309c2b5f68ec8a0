package agent

import (
	"nogo/game"
	"nogo/searcher"
)

// Agent picks moves for one side of a game.
type Agent interface {
	// ChooseMove returns the agent's move for state, or false when the
	// agent has nothing to play, plus whatever search metrics the agent
	// collected.
	ChooseMove(state game.Board) (game.Move, bool, searcher.MoveMetrics)
	Side() game.Color
}
