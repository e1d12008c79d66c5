package game

// Side identifies a player, or None for a neutral square.
type Side uint8

const (
	None Side = iota
	Red
	Blue
)

// Opposite returns the other player. None has no opponent and maps to itself.
func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// letter is the single-character rendering used by Board.String.
func (s Side) letter() byte {
	switch s {
	case Red:
		return 'r'
	case Blue:
		return 'b'
	default:
		return '-'
	}
}
