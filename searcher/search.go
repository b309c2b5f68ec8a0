package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"nogo/game"
)

// search carries everything one decision needs: the random source, the
// candidate working lists for both sides, the playout counter that
// feeds the UCT formula, and the path buffer reused across cycles. A
// search lives and dies inside a single ChooseMove call.
type search struct {
	rng     *rand.Rand
	explore float64
	// Working candidate lists, shuffled in place by rollouts. Expansion
	// tolerates the changing order; extraction never reads them.
	own      []game.Move
	opp      []game.Move
	playouts int // Completed cycles, the N of the UCT formula
	path     []*node
	created  int
	maxDepth int
}

func newSearch(side game.Color, explore float64, rng *rand.Rand) *search {
	return &search{
		rng:     rng,
		explore: explore,
		own:     game.CandidateMoves(side),
		opp:     game.CandidateMoves(side.Opponent()),
	}
}

// runCycle performs one selection-expansion-rollout-backup repetition
// from root. The descent expands each node it meets and stops at the
// first node that is unvisited or terminal; that node is scored by a
// random playout whose outcome is credited to the whole path.
func (s *search) runCycle(root *node) {
	s.path = append(s.path[:0], root)
	n, ourTurn := root, true
	for {
		legal := s.expandNode(n, ourTurn)
		if n.visits == 0 || legal == 0 {
			break
		}
		n = s.pickChild(n)
		ourTurn = !ourTurn
		s.path = append(s.path, n)
	}

	win := s.rollout(n.state, ourTurn)
	s.playouts++
	s.backup(win)

	if len(s.path) > s.maxDepth {
		s.maxDepth = len(s.path)
	}
}

func (s *search) candidates(ourTurn bool) []game.Move {
	if ourTurn {
		return s.own
	}
	return s.opp
}

func (s *search) expandNode(n *node, ourTurn bool) int {
	before := len(n.children)
	legal := n.expand(s.candidates(ourTurn))
	s.created += len(n.children) - before
	return legal
}

// pickChild prefers unvisited children, uniformly at random among them.
// Once every child has been visited it takes the best selection score,
// keeping the earliest child on ties.
func (s *search) pickChild(n *node) *node {
	unvisited := 0
	for _, c := range n.children {
		if c.visits == 0 {
			unvisited++
		}
	}
	if unvisited > 0 {
		k := s.rng.Intn(unvisited)
		for _, c := range n.children {
			if c.visits != 0 {
				continue
			}
			if k == 0 {
				return c
			}
			k--
		}
	}

	best := n.children[0]
	for _, c := range n.children[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best
}

// rollout plays uniformly random legal moves for both sides until the
// side to move has none, and reports whether the searching side made
// the last successful move. A side that never moves loses, so the flag
// starts with the other side.
func (s *search) rollout(state game.Board, ourTurn bool) bool {
	win := !ourTurn
	for {
		cands := s.candidates(ourTurn)
		s.rng.Shuffle(len(cands), func(i, j int) {
			cands[i], cands[j] = cands[j], cands[i]
		})

		moved := false
		for _, mv := range cands {
			if state.Apply(mv) {
				moved = true
				break
			}
		}
		if !moved {
			return win
		}
		win = ourTurn
		ourTurn = !ourTurn
	}
}

// backup credits every node on the current path with the playout
// outcome and recomputes its selection score. The counter is bumped
// before this runs, so all scores of one cycle observe the same total.
func (s *search) backup(win bool) {
	credit := 0.0
	if win {
		credit = 1
	}
	lnTotal := math.Log(float64(s.playouts))
	for _, n := range s.path {
		n.visits++
		n.wins += credit
		n.score = uct(n.wins, n.visits, s.explore, lnTotal)
	}
}
