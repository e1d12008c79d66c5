package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIllegalMove reports an AddSpot on a square that is out of range,
	// owned by the opponent, or played after the game already has a winner.
	// The board is left unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfRange reports a row/column or square number outside the board.
	ErrOutOfRange = errors.New("square out of range")
)

// Board is the state of a spot-overflow game on a size x size grid. Squares
// are addressed either by row and column (both between 1 and Size()) or by
// square number in row-major order (row 1 holds squares 0..Size()-1, and so
// on).
//
// A Board may be given a notifier: a callback invoked whenever the board is
// changed by Set, Clear, or SetNotifier. Ordinary moves (AddSpot) and Undo
// deliberately do not announce; collaborators poll after moves and are only
// pushed scripted edits.
type Board struct {
	size    int
	squares []Square
	history [][]Square
	current int
	notify  func(*Board)
}

// New returns a size x size board in its initial configuration: every square
// neutral with a single spot.
func New(size int) *Board {
	b := &Board{notify: func(*Board) {}}
	b.init(size)
	return b
}

func (b *Board) init(size int) {
	b.size = size
	b.squares = make([]Square, size*size)
	for i := range b.squares {
		b.squares[i] = Square{Side: None, Spots: 1}
	}
	b.history = nil
	b.current = 0
}

// Clone returns a deep copy of b with a cleared undo history and a no-op
// notifier. The searcher mutates clones so the caller's board stays intact.
func (b *Board) Clone() *Board {
	nb := New(b.size)
	copy(nb.squares, b.squares)
	return nb
}

// Clear reinitializes b to a fresh board with size squares on a side,
// dropping the undo history, and announces the change.
func (b *Board) Clear(size int) {
	b.init(size)
	b.announce()
}

// Copy overwrites b's contents with those of other and resets the undo
// history. Does not announce.
func (b *Board) Copy(other *Board) {
	if b.size != other.size {
		b.init(other.size)
	}
	b.history = nil
	b.current = 0
	copy(b.squares, other.squares)
}

// Size returns the number of rows (and columns).
func (b *Board) Size() int {
	return b.size
}

// Row returns the 1-indexed row of square #n.
func (b *Board) Row(n int) int {
	return n/b.size + 1
}

// Col returns the 1-indexed column of square #n.
func (b *Board) Col(n int) int {
	return n%b.size + 1
}

// Index returns the square number of row r, column c.
func (b *Board) Index(r, c int) int {
	return (c-1) + (r-1)*b.size
}

func (b *Board) exists(n int) bool {
	return 0 <= n && n < b.size*b.size
}

func (b *Board) existsRC(r, c int) bool {
	return 1 <= r && r <= b.size && 1 <= c && c <= b.size
}

// Get returns the square at row r, column c. It panics if the position is
// off the board; range errors here are programming errors, not game states.
func (b *Board) Get(r, c int) Square {
	if !b.existsRC(r, c) {
		panic(fmt.Sprintf("%v: row %d col %d on %dx%d board", ErrOutOfRange, r, c, b.size, b.size))
	}
	return b.squares[b.Index(r, c)]
}

// GetAt returns square #n. Panics if n is off the board.
func (b *Board) GetAt(n int) Square {
	if !b.exists(n) {
		panic(fmt.Sprintf("%v: square %d on %dx%d board", ErrOutOfRange, n, b.size, b.size))
	}
	return b.squares[n]
}

// NumPieces returns the total number of spots on the board.
func (b *Board) NumPieces() int {
	total := 0
	for _, sq := range b.squares {
		total += sq.Spots
	}
	return total
}

// NumOfSide returns the number of squares owned by side.
func (b *Board) NumOfSide(side Side) int {
	count := 0
	for _, sq := range b.squares {
		if sq.Side == side {
			count++
		}
	}
	return count
}

// WhoseMove returns the side that moves next, derived purely from the spot
// count parity: each move adds exactly one spot and turns strictly alternate,
// with Red moving first. On a won board this names the loser. Scripted Set
// edits can skew the parity; that is an accepted property of the formula, not
// something WhoseMove compensates for.
func (b *Board) WhoseMove() Side {
	if (b.NumPieces()+b.size)&1 == 0 {
		return Red
	}
	return Blue
}

// Winner returns the side owning every square, or None while the game is
// still undecided.
func (b *Board) Winner() Side {
	total := b.size * b.size
	if b.NumOfSide(Red) == total {
		return Red
	}
	if b.NumOfSide(Blue) == total {
		return Blue
	}
	return None
}

// IsLegalAt reports whether side may currently add a spot to square #n:
// the square is on the board, not owned by the opponent, and the game has no
// winner yet. Turn order is not checked here; see CanPlay.
func (b *Board) IsLegalAt(side Side, n int) bool {
	if !b.exists(n) {
		return false
	}
	if b.squares[n].Side == side.Opposite() {
		return false
	}
	return b.Winner() == None
}

// IsLegal reports whether side may currently add a spot at row r, column c.
func (b *Board) IsLegal(side Side, r, c int) bool {
	if !b.existsRC(r, c) {
		return false
	}
	return b.IsLegalAt(side, b.Index(r, c))
}

// CanPlay reports whether it is side's turn and side has not already lost.
func (b *Board) CanPlay(side Side) bool {
	if b.Winner() == side.Opposite() {
		return false
	}
	return b.WhoseMove() == side
}

// AddSpot adds a spot for side at row r, column c.
func (b *Board) AddSpot(side Side, r, c int) error {
	if !b.existsRC(r, c) {
		return fmt.Errorf("%w: row %d col %d", ErrIllegalMove, r, c)
	}
	return b.AddSpotAt(side, b.Index(r, c))
}

// AddSpotAt adds a spot for side at square #n: the square gains one spot and
// side takes ownership. If the new count exceeds the square's neighbor count
// the square overflows and the cascade runs until the board is stable again
// or one side owns everything. Validation happens before any mutation, so on
// error the board is unchanged. AddSpotAt does not announce.
func (b *Board) AddSpotAt(side Side, n int) error {
	if !b.IsLegalAt(side, n) {
		return fmt.Errorf("%w: %s at square %d", ErrIllegalMove, side, n)
	}
	b.markUndo()
	spots := b.squares[n].Spots + 1
	b.squares[n] = Square{Side: side, Spots: spots}
	if spots > b.Neighbors(n) {
		b.jump(n)
	}
	b.current++
	return nil
}

// Set assigns spots and side to the square at row r, column c directly,
// bypassing legality checks and the cascade. A count of zero makes the
// square neutral regardless of side. Used for scripted and test setups;
// announces the change.
func (b *Board) Set(r, c, spots int, side Side) error {
	if !b.existsRC(r, c) {
		return fmt.Errorf("%w: row %d col %d", ErrOutOfRange, r, c)
	}
	b.internalSet(b.Index(r, c), spots, side)
	b.announce()
	return nil
}

func (b *Board) internalSet(n, spots int, side Side) {
	if spots == 0 {
		b.squares[n] = Square{Side: None, Spots: 0}
	} else {
		b.squares[n] = Square{Side: side, Spots: spots}
	}
}

// simpleAdd adds delta spots of side to square #n without triggering a jump.
func (b *Board) simpleAdd(side Side, n, delta int) {
	b.internalSet(n, b.squares[n].Spots+delta, side)
}

// markUndo records the current grid in the undo history, immediately before
// a move mutates it.
func (b *Board) markUndo() {
	snapshot := make([]Square, len(b.squares))
	copy(snapshot, b.squares)
	b.history = append(b.history, snapshot)
}

// Undo reverses the effect of one AddSpot. With no moves to undo it is a
// no-op. Repeated calls walk back through the history one move at a time;
// past the oldest snapshot the board reverts to its initial configuration.
// Undo does not announce.
func (b *Board) Undo() {
	if b.current == 0 {
		return
	}
	b.current--
	if len(b.history) == 0 {
		fresh := New(b.size)
		copy(b.squares, fresh.squares)
		return
	}
	last := len(b.history) - 1
	copy(b.squares, b.history[last])
	b.history = b.history[:last]
}

// jump resolves overflow starting at square #s, which is the only square
// that might be over-full on entry. A square with more spots than neighbors
// keeps the remainder and donates one spot to each neighbor, capturing it;
// each neighbor's own overflow resolves fully, depth-first, before the next
// sibling is touched. Resolution stops early the moment either side owns the
// whole board, so a win freezes the cascade mid-flight. The neighbor order
// from adjacent is what makes replays of the same move sequence bit-identical.
func (b *Board) jump(s int) {
	total := b.size * b.size
	for b.exists(s) {
		if b.NumOfSide(Red) == total || b.NumOfSide(Blue) == total {
			return
		}
		sq := b.squares[s]
		numNeighbors := b.Neighbors(s)
		if sq.Spots <= numNeighbors {
			return
		}
		b.squares[s] = Square{Side: sq.Side, Spots: sq.Spots - numNeighbors}
		for _, m := range b.adjacent(s) {
			b.simpleAdd(sq.Side, m, 1)
			b.jump(m)
		}
	}
}

// Neighbors returns the number of orthogonal neighbors of square #n: 2 at a
// corner, 3 on an edge, 4 in the interior. A square's spot count may not
// exceed this without overflowing.
func (b *Board) Neighbors(n int) int {
	return b.NeighborsRC(b.Row(n), b.Col(n))
}

// NeighborsRC returns the number of orthogonal neighbors of row r, column c.
func (b *Board) NeighborsRC(r, c int) int {
	count := 0
	if r > 1 {
		count++
	}
	if c > 1 {
		count++
	}
	if r < b.size {
		count++
	}
	if c < b.size {
		count++
	}
	return count
}

// adjacent returns the square numbers orthogonally adjacent to square #s.
// The enumeration is by explicit position case, and the listing order within
// each case is fixed: jump distributes spots in exactly this order, and
// because a mid-cascade win stops distribution, reordering would change
// final positions. Do not replace this with a generic neighbor loop.
func (b *Board) adjacent(s int) []int {
	size := b.size
	switch {
	case s == 0:
		// top-left corner
		return []int{1, size}
	case s >= 1 && s <= size-2:
		// top edge
		return []int{s - 1, s + 1, s + size}
	case s == size-1:
		// top-right corner
		return []int{s - 1, s + size}
	case s%size == 0 && s >= size && s < size*size-size:
		// left edge
		return []int{s - size, s + size, s + 1}
	case (s+1)%size == 0 && s > size && s+1 < size*size:
		// right edge
		return []int{s - size, s + size, s - 1}
	case s == size*size-size:
		// bottom-left corner
		return []int{s - size, s + 1}
	case s > size*size-size && s < size*size-1:
		// bottom edge
		return []int{s + 1, s - 1, s - size}
	case s == size*size-1:
		// bottom-right corner
		return []int{s - size, s - 1}
	default:
		return []int{s - 1, s + 1, s + size, s - size}
	}
}

// Equal reports whether b and other have the same size and identical square
// contents. Undo history and notifiers are not part of board identity.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, sq := range b.squares {
		if other.squares[i] != sq {
			return false
		}
	}
	return true
}

// SetNotifier installs notify as b's change callback and announces
// immediately so the collaborator sees the current state.
func (b *Board) SetNotifier(notify func(*Board)) {
	b.notify = notify
	b.announce()
}

func (b *Board) announce() {
	b.notify(b)
}

// String renders the board as rows of <spots><owner letter> entries between
// === fences, e.g. a neutral 2x2 board:
//
//	===
//	    1- 1-
//	    1- 1-
//	===
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("===\n")
	for r := 1; r <= b.size; r++ {
		sb.WriteString("   ")
		for c := 1; c <= b.size; c++ {
			sq := b.Get(r, c)
			fmt.Fprintf(&sb, " %d%c", sq.Spots, sq.Side.letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("===\n")
	return sb.String()
}

// DisplayString renders the board for human display, with row labels on the
// left and a column footer.
func (b *Board) DisplayString() string {
	var sb strings.Builder
	for r := 1; r <= b.size; r++ {
		fmt.Fprintf(&sb, "%2d", r)
		for c := 1; c <= b.size; c++ {
			sq := b.Get(r, c)
			fmt.Fprintf(&sb, " %d%c", sq.Spots, sq.Side.letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for c := 1; c <= b.size; c++ {
		fmt.Fprintf(&sb, "%3d", c)
	}
	return sb.String()
}
