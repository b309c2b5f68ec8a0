package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"nogo/experiments"
	"nogo/game"
	"nogo/gamemaster"
)

// renderer draws boards and result lines, styled when the terminal
// supports it.
type renderer struct {
	output *termenv.Output
}

func newRenderer() *renderer {
	return &renderer{output: termenv.NewOutput(os.Stdout)}
}

func (r *renderer) stone(c game.Color) string {
	switch c {
	case game.Black:
		return r.output.String("●").Bold().String()
	case game.White:
		return r.output.String("○").String()
	}
	return r.output.String("·").Faint().String()
}

// Board renders the position with rank 9 on top, matching the move
// notation used everywhere else.
func (r *renderer) Board(b game.Board) string {
	var sb strings.Builder
	for y := game.Size - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := 0; x < game.Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(r.stone(b.Stone(game.PointAt(x, y))))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  A B C D E F G H J\n")
	return sb.String()
}

func (r *renderer) Move(record gamemaster.MoveRecord) string {
	line := fmt.Sprintf("move %d: %v", record.Step, record.Move)
	if record.Metrics.Playouts > 0 {
		line += fmt.Sprintf(" (%d playouts in %v)", record.Metrics.Playouts, record.Metrics.Duration.Round(time.Millisecond))
	}
	return r.output.String(line).Faint().String()
}

func (r *renderer) Summary(index int, result gamemaster.Result) string {
	msg := fmt.Sprintf("game %d: %v wins after %d moves in %v",
		index, result.Winner, result.Moves, result.Duration.Round(time.Millisecond))
	style := r.output.String(msg)
	if result.Winner == game.Black {
		return style.Foreground(termenv.ANSIGreen).String()
	}
	return style.Foreground(termenv.ANSICyan).String()
}

func (r *renderer) SeriesSummary(games, blackWins, totalMoves int, thinkTime time.Duration, thinkMoves int) string {
	msg := fmt.Sprintf("series over: black won %d of %d games, %.1f moves per game",
		blackWins, games, float64(totalMoves)/float64(games))
	if thinkMoves > 0 {
		average := thinkTime / time.Duration(thinkMoves)
		msg += fmt.Sprintf(", %v per searched move", average.Round(time.Microsecond))
	}
	return r.output.String(msg).Bold().String()
}

func (r *renderer) Tally(tally experiments.Tally) string {
	ids := make([]int, 0, len(tally.Wins))
	for id := range tally.Wins {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var sb strings.Builder
	sb.WriteString(r.output.String(fmt.Sprintf("arena over: %d games, black won %d", tally.Games, tally.BlackWins)).Bold().String())
	for _, id := range ids {
		fmt.Fprintf(&sb, "\n  agent %d: %d wins", id, tally.Wins[id])
	}
	return sb.String()
}
