package entity

// Outcome is derived from a board and never stored.
type Outcome uint8

const (
	InProgress Outcome = iota
	WinX
	WinO
	Draw
)

func Win(player Cell) Outcome {
	switch player {
	case X:
		return WinX
	case O:
		return WinO
	default:
		return InProgress
	}
}

// Winner reports the winning mark, false for draws and unfinished games.
func (that Outcome) Winner() (Cell, bool) {
	switch that {
	case WinX:
		return X, true
	case WinO:
		return O, true
	default:
		return Empty, false
	}
}

func (that Outcome) IsDecided() bool {
	return that != InProgress
}

// String is the short form used in status lines: "X", "O", "draw" or "".
func (that Outcome) String() string {
	switch that {
	case WinX:
		return PlayerX
	case WinO:
		return PlayerO
	case Draw:
		return PlayerTie
	default:
		return ""
	}
}
