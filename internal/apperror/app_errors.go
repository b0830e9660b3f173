package apperror

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is the root of every rejected move; the specific reasons below wrap it.
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrCellOccupied  = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrGameFinished  = fmt.Errorf("%w: game is already finished", ErrIllegalMove)
	ErrInvalidCell   = fmt.Errorf("%w: invalid cell index", ErrIllegalMove)
	ErrInvalidPlayer = fmt.Errorf("%w: invalid player mark", ErrIllegalMove)
)

var (
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrStepOutOfRange   = errors.New("step is out of range")
	ErrGameNotFound     = errors.New("game not found")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrCorruptedGame    = errors.New("game state is corrupted")
)
