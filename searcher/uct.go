package searcher

import "math"

// unvisitedScore ranks a never-visited child above every visited
// sibling during selection.
var unvisitedScore = math.Inf(1)

// uct scores a visited node: mean win rate plus the exploration bonus
// c*sqrt(ln(N)/n), where N counts all playouts of the current decision
// rather than the parent's visits.
func uct(wins float64, visits int, explore, lnTotal float64) float64 {
	if visits == 0 { // Prevent division by zero
		panic("cannot compute UCT: 0 visits")
	}

	n := float64(visits)
	return wins/n + explore*math.Sqrt(lnTotal/n)
}
