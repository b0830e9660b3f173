package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const Size = 3

// Cell is the state of a single square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "draw"
)

// Human always plays X and moves first, the computer answers with O.
const (
	Human    = X
	Computer = O
)

func (that Cell) String() string {
	switch that {
	case X:
		return PlayerX
	case O:
		return PlayerO
	default:
		return ""
	}
}

// Opponent returns the other mark, Empty stays Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Cell) IsPlayer() bool {
	return that == X || that == O
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case PlayerX:
		*that = X
	case PlayerO:
		*that = O
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, text)
	}

	return nil
}

// Move addresses a single cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) IsValid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a 3x3 grid. It is a value type, every assignment is a copy.
type Board [Size][Size]Cell

func NewBoard() Board {
	return Board{}
}

func (that Board) Cell(move Move) Cell {
	return that[move.Row][move.Col]
}

// Apply returns a copy of the board with the move played by player.
func (that Board) Apply(move Move, player Cell) (Board, error) {
	if !player.IsPlayer() {
		return that, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	if !move.IsValid() {
		return that, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if that.Outcome().IsDecided() {
		return that, apperror.ErrGameFinished
	}

	if that[move.Row][move.Col] != Empty {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that[move.Row][move.Col] = player

	return that, nil
}

// Outcome evaluates rows, then columns, then the main diagonal, then the anti-diagonal.
// Rows, columns and the anti-diagonal overwrite a shared result, the main diagonal returns at once.
// This only matters for boards with several winning lines, which legal play never produces.
func (that Board) Outcome() Outcome {
	winner := Empty

	for i := range Size {
		if that[i][0] != Empty && that[i][0] == that[i][1] && that[i][1] == that[i][2] {
			winner = that[i][0]
		}
	}

	for i := range Size {
		if that[0][i] != Empty && that[0][i] == that[1][i] && that[1][i] == that[2][i] {
			winner = that[0][i]
		}
	}

	if that[0][0] != Empty && that[1][1] == that[0][0] && that[1][1] == that[2][2] {
		return Win(that[0][0])
	}

	if that[0][2] != Empty && that[1][1] == that[0][2] && that[1][1] == that[2][0] {
		winner = that[0][2]
	}

	if winner != Empty {
		return Win(winner)
	}

	if that.IsFull() {
		return Draw
	}

	return InProgress
}

// LegalMoves lists the empty cells in row-major order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)

	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that Board) IsFull() bool {
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

func (that Board) String() string {
	var sb strings.Builder

	for row := range Size {
		for col := range Size {
			mark := that[row][col].String()
			if mark == "" {
				mark = "."
			}
			sb.WriteString(mark)
		}

		if row < Size-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
