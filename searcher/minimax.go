package searcher

import (
	"math"

	"github.com/rs/zerolog/log"

	"jump61/game"
)

// DefaultDepth is the search horizon in plies when no WithDepth option is
// given.
const DefaultDepth = 4

type Option func(*Minimax)

// Minimax chooses moves by fixed-depth minimax with alpha-beta pruning. It
// explores by mutating a private clone of the caller's board with
// AddSpotAt/Undo pairs rather than allocating a board per tree node. A
// Minimax is not safe for concurrent ChooseMove calls; the game loop is
// single-threaded and so is the search.
type Minimax struct {
	depth    int
	reporter func(row, col int)
	metrics  MetricsCollector
	found    int
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithReporter registers a collaborator told the row and column of each
// chosen move, independently of the returned square number.
func WithReporter(report func(row, col int)) Option {
	return func(m *Minimax) {
		if report != nil {
			m.reporter = report
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		depth:   DefaultDepth,
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove returns the square number of the best move found for side on b,
// searching the game tree to the configured depth. The caller's board is
// untouched. Among equal-valued moves the lowest square number wins, since
// the saved move only changes on a strict improvement. Assumes the game is
// not over; if it is, no move exists and ChooseMove returns -1.
func (m *Minimax) ChooseMove(b *game.Board, side game.Side) (int, MoveMetrics) {
	m.metrics.Start()
	work := b.Clone()
	m.found = -1

	sense := 1
	if side == game.Blue {
		sense = -1
	}
	value := m.minmax(work, m.depth, true, sense, math.MinInt, math.MaxInt)

	metrics := m.metrics.Complete()
	log.Debug().
		Str("side", side.String()).
		Int("square", m.found).
		Int("value", value).
		Int64("nodes", metrics.Nodes).
		Int64("cutoffs", metrics.Cutoffs).
		Dur("took", metrics.Duration).
		Msg("search complete")

	if m.reporter != nil && m.found >= 0 {
		m.reporter(b.Row(m.found), b.Col(m.found))
	}
	return m.found, metrics
}

// minmax searches to depth plies from b and returns the position's value,
// recording the move found in m.found iff saveMove. sense is +1 when
// maximizing (Red's interest) and -1 when minimizing; it flips each ply.
// Searching at depth 0, or from a decided position, returns the static
// evaluation and saves nothing.
func (m *Minimax) minmax(b *game.Board, depth int, saveMove bool, sense, alpha, beta int) int {
	if depth == 0 || b.Winner() != game.None {
		m.metrics.AddLeaf()
		return game.Evaluate(b)
	}
	m.metrics.AddNode()

	best := math.MinInt
	worst := math.MaxInt
	mover := b.WhoseMove()
	for n := 0; n < b.Size()*b.Size(); n++ {
		if !b.IsLegalAt(mover, n) {
			continue
		}
		if err := b.AddSpotAt(mover, n); err != nil {
			panic(err) // legality was just checked
		}
		if sense == 1 {
			response := m.minmax(b, depth-1, false, -1, alpha, beta)
			b.Undo()
			if response > best {
				best = response
				if best > alpha {
					alpha = best
				}
				if alpha >= beta {
					m.metrics.AddCutoff()
					break
				}
				if saveMove {
					m.found = n
				}
			}
		} else {
			response := m.minmax(b, depth-1, false, 1, alpha, beta)
			b.Undo()
			if response < worst {
				worst = response
				if worst < beta {
					beta = worst
				}
				if alpha >= beta {
					m.metrics.AddCutoff()
					break
				}
				if saveMove {
					m.found = n
				}
			}
		}
	}
	if sense == 1 {
		return best
	}
	return worst
}
