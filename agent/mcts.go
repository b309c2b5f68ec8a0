package agent

import (
	"nogo/game"
	"nogo/searcher"
)

// MCTS plays with the Monte Carlo tree search engine.
type MCTS struct {
	engine *searcher.MCTS
}

func NewMCTS(side game.Color, options ...searcher.Option) (*MCTS, error) {
	engine, err := searcher.NewMCTS(side, options...)
	if err != nil {
		return nil, err
	}
	return &MCTS{engine: engine}, nil
}

func (a *MCTS) Side() game.Color {
	return a.engine.Side()
}

func (a *MCTS) ChooseMove(state game.Board) (game.Move, bool, searcher.MoveMetrics) {
	decision, metrics := a.engine.ChooseMove(state)
	return decision.Move, decision.Found, metrics
}
