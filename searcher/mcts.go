package searcher

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"nogo/game"
)

// DefaultSeed seeds engines whose configuration does not set one, so an
// unconfigured engine still searches reproducibly.
const DefaultSeed = 1

// MCTS picks moves for one side by Monte Carlo tree search with UCT
// selection. An engine is single-threaded: each decision runs to
// completion on the calling goroutine and builds its own tree from
// scratch. Only the random source carries over between decisions.
type MCTS struct {
	side      game.Color
	playouts  int
	explore   float64
	rng       *rand.Rand
	collector MetricsCollector
}

type Option func(m *MCTS)

// WithPlayouts sets the number of playout cycles per decision. The
// budget is mandatory; zero is a valid budget, a negative one is not.
func WithPlayouts(playouts int) Option {
	return func(m *MCTS) {
		m.playouts = playouts
	}
}

// WithExploration sets the exploration weight of the selection formula.
// The weight is mandatory and must be a finite non-negative number.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.explore = c
	}
}

// WithSeed fixes the engine's random source. Engines with the same
// seed, position, and budget reproduce the same tree and decision.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics collects per-decision search metrics.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.collector = NewMetricsCollector()
	}
}

func NewMCTS(side game.Color, options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		side:      side,
		playouts:  -1,
		explore:   math.NaN(),
		collector: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}

	if side != game.Black && side != game.White {
		return nil, fmt.Errorf("searcher: invalid side %q", side)
	}
	if m.playouts < 0 {
		return nil, errors.New("searcher: playout budget missing or negative")
	}
	if math.IsNaN(m.explore) || math.IsInf(m.explore, 0) || m.explore < 0 {
		return nil, errors.New("searcher: exploration weight missing or invalid")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return m, nil
}

// Side returns the color the engine searches for.
func (m *MCTS) Side() game.Color {
	return m.side
}

// Decision is the outcome of one ChooseMove call. Found is false when
// the engine has nothing to offer: the position is terminal for the
// searching side, or the budget was zero and no child was ever created.
// Policy maps every legal root move to its visit count, the root
// distribution the search converged on.
type Decision struct {
	Move   game.Move
	Found  bool
	Policy map[game.Move]int
}

// ChooseMove spends the configured playout budget on state and returns
// the most-visited root move. The search tree exists only inside this
// call; the engine keeps no reference to it afterwards.
func (m *MCTS) ChooseMove(state game.Board) (Decision, MoveMetrics) {
	m.collector.Start()

	s := newSearch(m.side, m.explore, m.rng)
	root := newNode(state)
	for i := 0; i < m.playouts; i++ {
		s.runCycle(root)
		m.collector.AddPlayout()
	}
	m.collector.SetTreeStats(s.created+1, s.maxDepth)

	decision := m.extract(root, state)
	metrics := m.collector.Complete()

	if decision.Found {
		log.Debug().Msgf("%v chose %v after %d playouts", m.side, decision.Move, m.playouts)
	} else {
		log.Debug().Msgf("%v found no move after %d playouts", m.side, m.playouts)
	}
	return decision, metrics
}

// extract reads the root statistics and maps the most-visited child
// back to its move by replaying the canonical candidate order against
// the decision position. Ties keep the earliest child. A tree that does
// not line up with the position's legal moves is a corrupted search,
// not a playable result.
func (m *MCTS) extract(root *node, state game.Board) Decision {
	if len(root.children) == 0 {
		return Decision{}
	}

	best := 0
	for i, c := range root.children {
		if c.visits > root.children[best].visits {
			best = i
		}
	}

	decision := Decision{Policy: make(map[game.Move]int, len(root.children))}
	matched := 0
	for _, mv := range game.CandidateMoves(m.side) {
		after := state
		if !after.Apply(mv) {
			continue
		}
		for i, c := range root.children {
			if c.state != after {
				continue
			}
			decision.Policy[mv] = c.visits
			matched++
			if i == best {
				decision.Move = mv
				decision.Found = true
			}
			break
		}
	}

	if matched != len(root.children) || !decision.Found {
		panic("search tree does not match the root position's legal moves")
	}
	return decision
}
