package engine

import (
	"github.com/rs/zerolog/log"

	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/player"
)

// MaxTurns caps a runaway game. Well below this, one side owns the board; the
// cap only matters when two weak players shuffle spots back and forth.
const MaxTurns = 500

// Engine drives a complete local game between two players on one board.
type Engine struct {
	Board *game.Board
	Red   player.Player
	Blue  player.Player
}

// Local returns an engine for a fresh size x size game between red and blue.
func Local(size int, red, blue player.Player) *Engine {
	if red.Side() != game.Red || blue.Side() != game.Blue {
		panic("players bound to the wrong sides")
	}
	return &Engine{
		Board: game.New(size),
		Red:   red,
		Blue:  blue,
	}
}

// Run executes the game loop until a winner is found or MaxTurns is reached,
// and returns the winner (None on a capped or aborted game) along with one
// record per move played.
func (e *Engine) Run() (game.Side, []metrics.MoveRecord) {
	log.Info().
		Int("size", e.Board.Size()).
		Str("first", e.Board.WhoseMove().String()).
		Msg("game starting")

	var records []metrics.MoveRecord
	turn := 1
	for e.Board.Winner() == game.None && turn <= MaxTurns {
		mover := e.Board.WhoseMove()
		p := e.Red
		if mover == game.Blue {
			p = e.Blue
		}

		n, search, ok := p.FindMove(e.Board)
		if !ok {
			log.Error().Str("side", mover.String()).Msg("player returned no move")
			break
		}
		if err := e.Board.AddSpotAt(mover, n); err != nil {
			log.Error().Err(err).
				Str("side", mover.String()).
				Int("square", n).
				Msg("player chose an illegal move")
			break
		}

		records = append(records, metrics.MoveRecord{
			Turn:   turn,
			Player: mover.String(),
			Square: n,
			Search: search,
		})
		log.Debug().
			Int("turn", turn).
			Str("side", mover.String()).
			Int("row", e.Board.Row(n)).
			Int("col", e.Board.Col(n)).
			Msg("move played")
		turn++
	}

	winner := e.Board.Winner()
	log.Info().
		Str("winner", winner.String()).
		Int("turns", turn-1).
		Msg("game over")
	return winner, records
}
