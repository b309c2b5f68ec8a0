package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"nogo/game"
	"nogo/searcher"
)

// Random plays a uniformly random legal move. It is the baseline
// opponent for measuring search strength.
type Random struct {
	side game.Color
	rng  *rand.Rand
}

func NewRandom(side game.Color, seed uint64) (*Random, error) {
	if side != game.Black && side != game.White {
		return nil, fmt.Errorf("agent: invalid side %q", side)
	}
	return &Random{side: side, rng: rand.New(rand.NewSource(seed))}, nil
}

func (a *Random) Side() game.Color {
	return a.side
}

func (a *Random) ChooseMove(state game.Board) (game.Move, bool, searcher.MoveMetrics) {
	moves := state.LegalMoves(a.side)
	if len(moves) == 0 {
		return game.Move{}, false, searcher.MoveMetrics{}
	}
	return moves[a.rng.Intn(len(moves))], true, searcher.MoveMetrics{}
}
