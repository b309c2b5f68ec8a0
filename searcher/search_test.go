package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"nogo/game"
)

func testSearch(seed uint64) *search {
	return newSearch(game.Black, 1.4, rand.New(rand.NewSource(seed)))
}

func countStones(b game.Board, c game.Color) int {
	count := 0
	for p := game.Point(0); p < game.Points; p++ {
		if b.Stone(p) == c {
			count++
		}
	}
	return count
}

func TestRunCycle(t *testing.T) {
	t.Run("first cycle expands the root and rolls out from it", func(t *testing.T) {
		s := testSearch(7)
		root := newNode(game.Board{})

		s.runCycle(root)

		require.Equal(t, 1, root.visits)
		require.Len(t, root.children, game.Points)
		for _, c := range root.children {
			require.Zero(t, c.visits, "the first cycle should not descend")
		}
		require.Equal(t, 1, s.playouts)
		require.Equal(t, game.Points, s.created)
		require.Equal(t, 1, s.maxDepth)
		require.False(t, math.IsInf(root.score, 1), "a visited root should carry a real score")
	})

	t.Run("second cycle descends into exactly one child", func(t *testing.T) {
		s := testSearch(7)
		root := newNode(game.Board{})

		s.runCycle(root)
		s.runCycle(root)

		require.Equal(t, 2, root.visits)
		visited := 0
		for _, c := range root.children {
			if c.visits == 0 {
				continue
			}
			visited++
			require.Equal(t, 1, c.visits)
			require.Len(t, c.children, game.Points-1, "the visited child should be expanded in turn")
			require.Equal(t, 1, countStones(c.children[0].state, game.White),
				"grandchildren should hold the opponent's reply")
		}
		require.Equal(t, 1, visited)
		require.Equal(t, 2, s.maxDepth)
	})

	t.Run("terminal root accumulates visits without children", func(t *testing.T) {
		s := testSearch(7)
		root := newNode(mustBoard(t, blackBlocked))

		for i := 0; i < 3; i++ {
			s.runCycle(root)
		}

		require.Equal(t, 3, root.visits)
		require.Empty(t, root.children)
		require.Zero(t, root.wins, "a side that cannot move has lost every playout")
		require.Equal(t, 3, s.playouts)
	})
}

func TestPickChild(t *testing.T) {
	t.Run("prefers an unvisited child over any score", func(t *testing.T) {
		unvisited := &node{score: unvisitedScore}
		parent := &node{children: []*node{
			{visits: 9, wins: 9, score: 99},
			unvisited,
			{visits: 5, wins: 5, score: 42},
		}}
		s := testSearch(3)

		for i := 0; i < 20; i++ {
			require.Same(t, unvisited, s.pickChild(parent))
		}
	})

	t.Run("draws uniformly among unvisited children", func(t *testing.T) {
		a := &node{score: unvisitedScore}
		b := &node{score: unvisitedScore}
		c := &node{score: unvisitedScore}
		parent := &node{children: []*node{a, {visits: 1, score: 0.5}, b, c}}
		s := testSearch(3)

		picked := map[*node]int{}
		for i := 0; i < 60; i++ {
			picked[s.pickChild(parent)]++
		}

		require.Len(t, picked, 3)
		for _, n := range []*node{a, b, c} {
			require.Greater(t, picked[n], 0, "every unvisited child should be reachable")
		}
	})

	t.Run("takes the best score once all are visited", func(t *testing.T) {
		best := &node{visits: 1, score: 0.9}
		parent := &node{children: []*node{
			{visits: 1, score: 0.3},
			best,
			{visits: 1, score: 0.5},
		}}

		require.Same(t, best, testSearch(3).pickChild(parent))
	})

	t.Run("keeps the earliest child on ties", func(t *testing.T) {
		first := &node{visits: 1, score: 0.5}
		parent := &node{children: []*node{
			first,
			{visits: 1, score: 0.5},
			{visits: 1, score: 0.5},
		}}

		require.Same(t, first, testSearch(3).pickChild(parent))
	})
}

func TestRollout(t *testing.T) {
	t.Run("side unable to move at all loses", func(t *testing.T) {
		s := testSearch(5)

		require.False(t, s.rollout(mustBoard(t, blackBlocked), true),
			"black to move with no legal move is a loss")
		require.True(t, s.rollout(mustBoard(t, bothBlocked), false),
			"white to move with no legal move is a win for black")
	})

	t.Run("credits the side making the last move", func(t *testing.T) {
		board := mustBoard(t, lastLiberties)

		for seed := uint64(1); seed <= 5; seed++ {
			s := testSearch(seed)
			require.True(t, s.rollout(board, true), "black fills a liberty and white is left with nothing")
			require.False(t, s.rollout(board, false), "white fills a liberty and black is left with nothing")
		}
	})
}

func TestBackup(t *testing.T) {
	t.Run("credits a win along the whole path", func(t *testing.T) {
		inner := &node{visits: 1, wins: 1}
		leaf := &node{score: unvisitedScore}
		s := testSearch(3)
		s.path = []*node{inner, leaf}
		s.playouts = 2

		s.backup(true)

		lnTotal := math.Log(2)
		require.Equal(t, 2, inner.visits)
		require.Equal(t, 2.0, inner.wins)
		require.Equal(t, uct(2, 2, s.explore, lnTotal), inner.score)
		require.Equal(t, 1, leaf.visits)
		require.Equal(t, 1.0, leaf.wins)
		require.Equal(t, uct(1, 1, s.explore, lnTotal), leaf.score,
			"all scores of one cycle should observe the same playout total")
	})

	t.Run("records a loss without win credit", func(t *testing.T) {
		n := &node{visits: 3, wins: 2}
		s := testSearch(3)
		s.path = []*node{n}
		s.playouts = 4

		s.backup(false)

		require.Equal(t, 4, n.visits)
		require.Equal(t, 2.0, n.wins)
		require.Equal(t, uct(2, 4, s.explore, math.Log(4)), n.score)
	})
}

// TestStatisticsConservation checks the structural accounting of a
// sizable tree: every parent's visits are one rollout plus the visits
// of its children, and no node wins more than it is visited.
func TestStatisticsConservation(t *testing.T) {
	s := testSearch(42)
	root := newNode(game.Board{})
	const cycles = 200

	for i := 0; i < cycles; i++ {
		s.runCycle(root)
	}

	require.Equal(t, cycles, root.visits)
	require.Equal(t, cycles, s.playouts)

	var walk func(n *node)
	walk = func(n *node) {
		require.GreaterOrEqual(t, n.wins, 0.0)
		require.LessOrEqual(t, n.wins, float64(n.visits))
		if len(n.children) > 0 {
			sum := 0
			for _, c := range n.children {
				sum += c.visits
			}
			require.Equal(t, n.visits, sum+1,
				"every visit but the expanding one descends into a child")
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
}

func TestSearchDeterminism(t *testing.T) {
	visitVector := func(seed uint64) []int {
		s := testSearch(seed)
		root := newNode(game.Board{})
		for i := 0; i < 60; i++ {
			s.runCycle(root)
		}
		visits := make([]int, len(root.children))
		for i, c := range root.children {
			visits[i] = c.visits
		}
		return visits
	}

	require.Equal(t, visitVector(9), visitVector(9),
		"equal seeds should reproduce the same tree")
}
