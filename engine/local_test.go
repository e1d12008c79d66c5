package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jump61/game"
	"jump61/player"
	"jump61/searcher"
)

func TestLocalValidatesSides(t *testing.T) {
	red := player.NewRandom(game.Red, 1)
	blue := player.NewRandom(game.Blue, 2)

	require.NotPanics(t, func() { Local(3, red, blue) })
	require.Panics(t, func() { Local(3, blue, red) }, "Players on the wrong sides")
	require.Panics(t, func() { Local(3, red, red) })
}

func TestRunSearchVsSearch(t *testing.T) {
	red := player.NewAI(game.Red, searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics()))
	blue := player.NewAI(game.Blue, searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics()))
	e := Local(2, red, blue)

	winner, records := e.Run()

	require.Contains(t, []game.Side{game.Red, game.Blue}, winner,
		"A 2x2 game cannot stall: spots grow past what a stable board can hold")
	require.Equal(t, winner, e.Board.Winner())
	require.NotEmpty(t, records)
	require.Less(t, len(records), MaxTurns)
	for i, record := range records {
		require.Equal(t, i+1, record.Turn)
		require.Positive(t, record.Search.Nodes, "Search players record their effort")
	}
}

func TestRunRandomVsRandom(t *testing.T) {
	red := player.NewRandom(game.Red, 11)
	blue := player.NewRandom(game.Blue, 12)
	e := Local(3, red, blue)

	winner, records := e.Run()

	require.Contains(t, []game.Side{game.Red, game.Blue}, winner)
	require.NotEmpty(t, records)

	// Red moves on odd turns, Blue on even ones.
	for _, record := range records {
		if record.Turn%2 == 1 {
			require.Equal(t, game.Red.String(), record.Player)
		} else {
			require.Equal(t, game.Blue.String(), record.Player)
		}
	}
}
