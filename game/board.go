package game

import (
	"fmt"
	"strings"
)

// Board geometry. NoGo is played on the standard 9x9 grid.
const (
	Size   = 9
	Points = Size * Size
)

// Color marks a point as empty or occupied by one of the players.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other player. Empty has no opponent and maps to
// itself.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return c
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// ParseColor reads a player color from its role name.
func ParseColor(s string) (Color, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return Empty, fmt.Errorf("game: invalid color %q", s)
}

// Board is a snapshot of the grid. It is a plain value: assignment
// copies it and == compares it, so callers probe moves on copies and
// match resulting positions by equality. Whose turn it is is not part
// of the snapshot; the caller tracks that.
type Board struct {
	cells [Points]Color
}

// Stone returns the color occupying p.
func (b *Board) Stone(p Point) Color {
	return b.cells[p]
}

// Empty reports whether no stone has been placed yet.
func (b *Board) Empty() bool {
	return *b == Board{}
}

// neighbors holds the orthogonally adjacent points of every point,
// precomputed because legality checks walk them constantly.
var neighbors [Points][]Point

func init() {
	for p := Point(0); p < Points; p++ {
		x, y := p.X(), p.Y()
		if x > 0 {
			neighbors[p] = append(neighbors[p], p-1)
		}
		if x < Size-1 {
			neighbors[p] = append(neighbors[p], p+1)
		}
		if y > 0 {
			neighbors[p] = append(neighbors[p], p-Size)
		}
		if y < Size-1 {
			neighbors[p] = append(neighbors[p], p+Size)
		}
	}
}

// Apply plays m on the board when it is legal and reports legality.
// The receiver changes only for a legal move, so the outcome is a pure
// function of (board, move). NoGo legality: the point is empty, the
// placed stone's chain keeps at least one liberty, and no adjacent
// enemy chain is left without a liberty (capturing is forbidden).
func (b *Board) Apply(m Move) bool {
	if m.Color != Black && m.Color != White {
		return false
	}
	if m.Point < 0 || m.Point >= Points {
		return false
	}
	if b.cells[m.Point] != Empty {
		return false
	}
	b.cells[m.Point] = m.Color
	if !b.chainAlive(m.Point) {
		b.cells[m.Point] = Empty
		return false
	}
	enemy := m.Color.Opponent()
	for _, n := range neighbors[m.Point] {
		if b.cells[n] == enemy && !b.chainAlive(n) {
			b.cells[m.Point] = Empty
			return false
		}
	}
	return true
}

// chainAlive reports whether the chain containing p has a liberty. It
// walks the chain with an explicit stack and stops at the first empty
// neighbor found.
func (b *Board) chainAlive(p Point) bool {
	color := b.cells[p]
	var seen [Points]bool
	var stack [Points]Point
	seen[p] = true
	stack[0] = p
	top := 1
	for top > 0 {
		top--
		cur := stack[top]
		for _, n := range neighbors[cur] {
			switch {
			case b.cells[n] == Empty:
				return true
			case b.cells[n] == color && !seen[n]:
				seen[n] = true
				stack[top] = n
				top++
			}
		}
	}
	return false
}

// CandidateMoves returns every placement for c in board-scan order,
// regardless of the position. Legality is decided by Apply.
func CandidateMoves(c Color) []Move {
	moves := make([]Move, Points)
	for p := Point(0); p < Points; p++ {
		moves[p] = Move{Point: p, Color: c}
	}
	return moves
}

// LegalMoves filters the candidate placements of c against the board.
func (b *Board) LegalMoves(c Color) []Move {
	var moves []Move
	for _, m := range CandidateMoves(c) {
		probe := *b
		if probe.Apply(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMove reports whether c can still place a stone. A side
// without a legal move has lost.
func (b *Board) HasLegalMove(c Color) bool {
	for _, m := range CandidateMoves(c) {
		probe := *b
		if probe.Apply(m) {
			return true
		}
	}
	return false
}

// String renders the board as a labeled diagram, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			switch b.cells[PointAt(x, y)] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for x := 0; x < Size; x++ {
		if x > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(columns[x])
	}
	sb.WriteByte('\n')
	return sb.String()
}

// ParseBoard reads a compact diagram: Size rows of Size cells, top row
// first, 'X' for black, 'O' for white, '.' for empty. Blank lines and
// spaces between cells are ignored, which keeps fixtures readable.
func ParseBoard(diagram string) (Board, error) {
	var b Board
	y := Size - 1
	for _, line := range strings.Split(diagram, "\n") {
		row := strings.Join(strings.Fields(line), "")
		if row == "" {
			continue
		}
		if y < 0 {
			return Board{}, fmt.Errorf("game: diagram has more than %d rows", Size)
		}
		if len(row) != Size {
			return Board{}, fmt.Errorf("game: diagram row %q is not %d cells", line, Size)
		}
		for x := 0; x < Size; x++ {
			switch row[x] {
			case 'X':
				b.cells[PointAt(x, y)] = Black
			case 'O':
				b.cells[PointAt(x, y)] = White
			case '.':
			default:
				return Board{}, fmt.Errorf("game: invalid cell %q in row %q", row[x], line)
			}
		}
		y--
	}
	if y != -1 {
		return Board{}, fmt.Errorf("game: diagram has %d of %d rows", Size-1-y, Size)
	}
	return b, nil
}
