package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCT(t *testing.T) {
	t.Run("combines win rate and exploration bonus", func(t *testing.T) {
		got := uct(1, 2, 1.5, math.Ln2)

		want := 0.5 + 1.5*math.Sqrt(math.Ln2/2)
		require.InDelta(t, want, got, 1e-12)
	})

	t.Run("zero exploration is pure exploitation", func(t *testing.T) {
		require.Equal(t, 0.75, uct(3, 4, 0, math.Log(100)))
	})

	t.Run("bonus grows with the playout total", func(t *testing.T) {
		early := uct(0, 1, 1, math.Log(2))
		late := uct(0, 1, 1, math.Log(10))

		require.Greater(t, late, early, "a fixed node should look more attractive as the search grows")
	})

	t.Run("bonus shrinks with the node's visits", func(t *testing.T) {
		fresh := uct(0, 1, 1, math.Log(8))
		worn := uct(0, 4, 1, math.Log(8))

		require.Greater(t, fresh, worn, "repeat visits should cost exploration appeal")
	})

	t.Run("panics without visits", func(t *testing.T) {
		require.Panics(t, func() {
			uct(0, 0, 1, math.Log(2))
		})
	})
}

func TestUnvisitedScore(t *testing.T) {
	require.True(t, math.IsInf(unvisitedScore, 1))
	require.Greater(t, unvisitedScore, uct(10, 1, 100, math.Log(1e9)),
		"no finite score should outrank an unvisited node")
}
