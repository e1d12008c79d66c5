package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jump61/game"
	"jump61/searcher"
)

func wonBoard(size int, side game.Side) *game.Board {
	b := game.New(size)
	for r := 1; r <= size; r++ {
		for c := 1; c <= size; c++ {
			if err := b.Set(r, c, 2, side); err != nil {
				panic(err)
			}
		}
	}
	return b
}

func TestAIPlayer(t *testing.T) {
	p := NewAI(game.Red, searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics()))
	require.Equal(t, game.Red, p.Side())

	t.Run("finds a legal move with search metrics", func(t *testing.T) {
		b := game.New(3)
		n, metrics, ok := p.FindMove(b)

		require.True(t, ok)
		require.True(t, b.IsLegalAt(game.Red, n), "Square %d should be legal for red", n)
		require.Positive(t, metrics.Nodes)
	})

	t.Run("reports no move on a decided game", func(t *testing.T) {
		_, _, ok := p.FindMove(wonBoard(3, game.Blue))
		require.False(t, ok)
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("only plays legal squares", func(t *testing.T) {
		b := game.New(3)
		require.NoError(t, b.Set(1, 1, 2, game.Red))
		require.NoError(t, b.Set(1, 2, 2, game.Red))

		p := NewRandom(game.Blue, 7)
		for i := 0; i < 20; i++ {
			n, _, ok := p.FindMove(b)
			require.True(t, ok)
			require.True(t, b.IsLegalAt(game.Blue, n), "Square %d should be legal for blue", n)
		}
	})

	t.Run("same seed replays the same choices", func(t *testing.T) {
		b := game.New(3)
		first := NewRandom(game.Red, 42)
		second := NewRandom(game.Red, 42)

		for i := 0; i < 10; i++ {
			n1, _, _ := first.FindMove(b)
			n2, _, _ := second.FindMove(b)
			require.Equal(t, n1, n2)
		}
	})

	t.Run("reports no move on a decided game", func(t *testing.T) {
		p := NewRandom(game.Red, 1)
		_, _, ok := p.FindMove(wonBoard(2, game.Blue))
		require.False(t, ok)
	})
}
