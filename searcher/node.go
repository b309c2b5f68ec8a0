package searcher

import "nogo/game"

// node is one explored position in the search tree. A node owns its
// board snapshot and its children; nothing outside the current decision
// keeps a reference, so the whole tree is garbage once ChooseMove
// returns.
type node struct {
	state    game.Board
	visits   int
	wins     float64
	score    float64
	children []*node
}

func newNode(state game.Board) *node {
	return &node{state: state, score: unvisitedScore}
}

// expand probes every candidate placement against the node's state and
// appends a child for each legal one not yet represented, returning the
// count of legal moves. Children already present are kept, never
// rebuilt: the count comparison makes repeated expansion idempotent
// even when the candidate list arrives in a different order.
func (n *node) expand(candidates []game.Move) int {
	legal := 0
	for _, mv := range candidates {
		after := n.state
		if !after.Apply(mv) {
			continue
		}
		legal++
		if len(n.children) < legal {
			n.children = append(n.children, newNode(after))
		}
	}
	return legal
}
