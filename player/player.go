package player

import (
	"golang.org/x/exp/rand"

	"jump61/game"
	"jump61/searcher"
)

// Player decides moves for one side of a game.
type Player interface {
	Side() game.Side
	// FindMove returns the square to add a spot to, with the search metrics
	// behind the choice. ok is false when no move exists (the game is over).
	FindMove(b *game.Board) (n int, metrics searcher.MoveMetrics, ok bool)
}

// AI plays with a minimax searcher.
type AI struct {
	side   game.Side
	engine *searcher.Minimax
}

func NewAI(side game.Side, engine *searcher.Minimax) *AI {
	return &AI{side: side, engine: engine}
}

func (p *AI) Side() game.Side {
	return p.side
}

func (p *AI) FindMove(b *game.Board) (int, searcher.MoveMetrics, bool) {
	n, metrics := p.engine.ChooseMove(b, p.side)
	return n, metrics, n >= 0
}

// Random plays uniformly among legal squares. It is the baseline opponent in
// experiments; the seeded source keeps runs reproducible.
type Random struct {
	side game.Side
	rng  *rand.Rand
}

func NewRandom(side game.Side, seed uint64) *Random {
	return &Random{side: side, rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) Side() game.Side {
	return p.side
}

func (p *Random) FindMove(b *game.Board) (int, searcher.MoveMetrics, bool) {
	var legal []int
	for n := 0; n < b.Size()*b.Size(); n++ {
		if b.IsLegalAt(p.side, n) {
			legal = append(legal, n)
		}
	}
	if len(legal) == 0 {
		return -1, searcher.MoveMetrics{}, false
	}
	return legal[p.rng.Intn(len(legal))], searcher.MoveMetrics{}, true
}
