package gamemaster

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/game"
	"nogo/searcher"
)

// MoveRecord captures one played move and the search effort behind it.
type MoveRecord struct {
	Step    int
	Side    game.Color
	Move    game.Move
	Metrics searcher.MoveMetrics
}

// Result summarizes a finished game. The winner is the side that made
// the last move: a side unable to place a stone has lost.
type Result struct {
	Winner    game.Color
	Moves     int
	StartTime time.Time
	Duration  time.Duration
	History   []MoveRecord
}

// Local referees one game between two agents on its own authoritative
// board. Agents only ever receive copies of that board, and every move
// they offer is validated before it lands.
type Local struct {
	black agent.Agent
	white agent.Agent
	board game.Board

	// Observer, when set, sees the board after every validated move.
	Observer func(board game.Board, record MoveRecord)
}

func NewLocal(black, white agent.Agent) (*Local, error) {
	if black.Side() != game.Black {
		return nil, fmt.Errorf("gamemaster: black seat given a %v agent", black.Side())
	}
	if white.Side() != game.White {
		return nil, fmt.Errorf("gamemaster: white seat given a %v agent", white.Side())
	}
	return &Local{black: black, white: white}, nil
}

// Board returns a copy of the current position.
func (l *Local) Board() game.Board {
	return l.board
}

// Run plays the game to completion, black moving first. It returns an
// error only when an agent misbehaves; a blocked side is a normal game
// over, not an error.
func (l *Local) Run() (Result, error) {
	result := Result{StartTime: time.Now()}
	side := game.Black
	// A game can never outlast the board: every move fills a point.
	for step := 1; step <= game.Points; step++ {
		current := l.black
		if side == game.White {
			current = l.white
		}

		move, ok, metrics := current.ChooseMove(l.board)
		if !ok {
			break
		}
		if err := l.play(move, side); err != nil {
			return Result{}, err
		}

		record := MoveRecord{Step: step, Side: side, Move: move, Metrics: metrics}
		result.History = append(result.History, record)
		result.Moves++
		if l.Observer != nil {
			l.Observer(l.board, record)
		}
		log.Debug().Msgf("step %d: %v", step, move)

		side = side.Opponent()
	}

	result.Winner = side.Opponent()
	result.Duration = time.Since(result.StartTime)
	log.Info().Msgf("game over: %v wins after %d moves", result.Winner, result.Moves)
	return result, nil
}

// play validates the move against the authoritative board. An illegal
// move here is an agent defect, not a game outcome.
func (l *Local) play(move game.Move, side game.Color) error {
	if move.Color != side {
		return fmt.Errorf("gamemaster: %v moved out of turn: %v", move.Color, move)
	}
	if !l.board.Apply(move) {
		return fmt.Errorf("gamemaster: illegal move %v", move)
	}
	return nil
}
