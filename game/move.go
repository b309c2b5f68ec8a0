package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Point addresses a board intersection as x + y*Size, with (0, 0) at
// the lower-left corner. Candidate enumeration follows this numbering.
type Point int

// PointAt builds the point at column x, row y.
func PointAt(x, y int) Point {
	return Point(y*Size + x)
}

func (p Point) X() int { return int(p) % Size }
func (p Point) Y() int { return int(p) / Size }

// columns skips the letter I, following Go coordinate convention.
const columns = "ABCDEFGHJ"

func (p Point) String() string {
	if p < 0 || p >= Points {
		return fmt.Sprintf("point(%d)", int(p))
	}
	return fmt.Sprintf("%c%d", columns[p.X()], p.Y()+1)
}

// ParsePoint reads a coordinate such as "E5" or "j9".
func ParsePoint(s string) (Point, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("game: invalid point %q", s)
	}
	x := strings.IndexByte(columns, strings.ToUpper(s)[0])
	if x < 0 {
		return 0, fmt.Errorf("game: invalid column in point %q", s)
	}
	y, err := strconv.Atoi(s[1:])
	if err != nil || y < 1 || y > Size {
		return 0, fmt.Errorf("game: invalid row in point %q", s)
	}
	return PointAt(x, y-1), nil
}

// Move places a stone of a color on a point. Moves compare with == and
// key maps.
type Move struct {
	Point Point
	Color Color
}

func (m Move) String() string {
	side := "?"
	switch m.Color {
	case Black:
		side = "B"
	case White:
		side = "W"
	}
	return side + " " + m.Point.String()
}
