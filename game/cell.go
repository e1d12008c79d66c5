package game

// Square is the contents of one board position: the owning side and the
// number of spots on it. Squares are values; the board replaces a square
// wholesale on every change rather than mutating it in place.
type Square struct {
	Side  Side
	Spots int
}
