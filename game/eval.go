package game

// WinScore is the static value of a decided position: +WinScore when Red
// owns the board, -WinScore when Blue does. It dominates any achievable
// square-count difference so the search always prefers an actual win.
const WinScore = 1000

// Evaluate scores a position from Red's perspective: a won game is worth
// the full WinScore for the winning side, and anything else is the square
// ownership difference. The searcher's sense flips this for Blue.
func Evaluate(b *Board) int {
	switch b.Winner() {
	case Red:
		return WinScore
	case Blue:
		return -WinScore
	}
	return b.NumOfSide(Red) - b.NumOfSide(Blue)
}
