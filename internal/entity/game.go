package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is a single play session: every snapshot since the empty board and the one on display.
type Game struct {
	ID      string  `json:"id"`
	History []Board `json:"history"`
	Step    int     `json:"step"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		History: []Board{NewBoard()},
		Step:    0,
	}
}

// Validate checks that the step points into a non-empty history.
func (that *Game) Validate() error {
	if len(that.History) == 0 {
		return fmt.Errorf("%w: empty history", apperror.ErrCorruptedGame)
	}

	if that.Step < 0 || that.Step >= len(that.History) {
		return fmt.Errorf("%w: step %d of %d", apperror.ErrCorruptedGame, that.Step, len(that.History))
	}

	return nil
}

// Current returns the snapshot at the current step.
func (that *Game) Current() Board {
	return that.History[that.Step]
}

// NextPlayer is X on even steps and O on odd ones.
func (that *Game) NextPlayer() Cell {
	if that.Step%2 == 0 {
		return X
	}
	return O
}

func (that *Game) Outcome() Outcome {
	return that.Current().Outcome()
}

func (that *Game) IsFinished() bool {
	return that.Outcome().IsDecided()
}

func (that *Game) State() string {
	if that.IsFinished() {
		return StatusFinished
	}
	return StatusOngoing
}

// Status renders the human readable line, e.g. "Winner: O" or "Next player: X".
func (that *Game) Status() string {
	if outcome := that.Outcome(); outcome.IsDecided() {
		return "Winner: " + outcome.String()
	}

	return "Next player: " + that.NextPlayer().String()
}

// MakeTurn plays move for player on the current snapshot. Snapshots after the
// current step are dropped before the new one is appended.
func (that *Game) MakeTurn(player Cell, move Move) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.NextPlayer() != player {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Current().Apply(move, player)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.History = append(that.History[:that.Step+1], board)
	that.Step++

	return nil
}

func (that *Game) ApplyHumanMove(move Move) error {
	return that.MakeTurn(Human, move)
}

func (that *Game) ApplyComputerMove(move Move) error {
	return that.MakeTurn(Computer, move)
}

// JumpTo moves the view to an earlier or later snapshot without discarding any.
func (that *Game) JumpTo(step int) error {
	if step < 0 || step >= len(that.History) {
		return fmt.Errorf("%w: %d of %d", apperror.ErrStepOutOfRange, step, len(that.History))
	}

	that.Step = step

	return nil
}

// MoveLabels returns the navigation labels for every snapshot.
func (that *Game) MoveLabels() []string {
	labels := make([]string, len(that.History))
	for step := range that.History {
		if step == 0 {
			labels[step] = "Go to game start"
			continue
		}
		labels[step] = fmt.Sprintf("Go to move #%d", step)
	}

	return labels
}
