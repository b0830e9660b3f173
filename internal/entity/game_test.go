package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: create a new game
	game := NewGame("123")

	// Then: the game starts with a single empty snapshot and X to move
	expected := &Game{
		ID:      "123",
		History: []Board{NewBoard()},
		Step:    0,
	}

	require.Equal(t, expected, game)
	assert.Equal(t, X, game.NextPlayer())
	assert.Equal(t, "Next player: X", game.Status())
	assert.Equal(t, StatusOngoing, game.State())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Each move appends one snapshot", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: X then O play
		require.NoError(t, game.ApplyHumanMove(Move{Row: 1, Col: 1}))
		require.NoError(t, game.ApplyComputerMove(Move{Row: 0, Col: 0}))

		// Then: there are three snapshots and X is next again
		require.Len(t, game.History, 3)
		assert.Equal(t, 2, game.Step)
		assert.Equal(t, X, game.NextPlayer())
		assert.Equal(t, X, game.History[1][1][1])
		assert.Equal(t, Empty, game.History[1][0][0])
		assert.Equal(t, O, game.Current()[0][0])
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where X moves first
		game := NewGame("123")

		// When: O tries to move first
		err := game.ApplyComputerMove(Move{Row: 0, Col: 0})

		// Then: ErrNotYourTurn is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Len(t, game.History, 1)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X has played (0,0)
		game := NewGame("123")
		require.NoError(t, game.ApplyHumanMove(Move{Row: 0, Col: 0}))

		// When: O plays the same cell
		err := game.ApplyComputerMove(Move{Row: 0, Col: 0})

		// Then: an illegal move is reported and the history is unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Len(t, game.History, 2)
		assert.Equal(t, 1, game.Step)
	})

	t.Run("Error on move after game finished", func(t *testing.T) {
		// Given: X completes the top row
		game := NewGame("123")
		moves := []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
		for i, move := range moves {
			player := X
			if i%2 == 1 {
				player = O
			}
			require.NoError(t, game.MakeTurn(player, move))
		}

		// When: O tries to keep playing
		err := game.ApplyComputerMove(Move{Row: 2, Col: 2})

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, "Winner: X", game.Status())
		assert.Equal(t, StatusFinished, game.State())
	})

	t.Run("Move after jumping back discards later snapshots", func(t *testing.T) {
		// Given: four moves have been played
		game := NewGame("123")
		require.NoError(t, game.ApplyHumanMove(Move{Row: 0, Col: 0}))
		require.NoError(t, game.ApplyComputerMove(Move{Row: 1, Col: 1}))
		require.NoError(t, game.ApplyHumanMove(Move{Row: 2, Col: 2}))
		require.NoError(t, game.ApplyComputerMove(Move{Row: 0, Col: 2}))

		// When: the player jumps to the start and plays somewhere else
		require.NoError(t, game.JumpTo(0))
		require.NoError(t, game.ApplyHumanMove(Move{Row: 2, Col: 0}))

		// Then: only the start and the new snapshot remain
		require.Len(t, game.History, 2)
		assert.Equal(t, 1, game.Step)
		assert.Equal(t, X, game.Current()[2][0])
		assert.Equal(t, Empty, game.Current()[0][0])
	})
}

func TestGame_JumpTo(t *testing.T) {
	t.Run("Jump keeps the history and flips the next player", func(t *testing.T) {
		// Given: two moves have been played
		game := NewGame("123")
		require.NoError(t, game.ApplyHumanMove(Move{Row: 0, Col: 0}))
		require.NoError(t, game.ApplyComputerMove(Move{Row: 1, Col: 1}))

		// When: jumping to step 1
		require.NoError(t, game.JumpTo(1))

		// Then: O is to move on the snapshot after X's move
		assert.Len(t, game.History, 3)
		assert.Equal(t, O, game.NextPlayer())
		assert.Equal(t, "Next player: O", game.Status())
		assert.Equal(t, X, game.Current()[0][0])
		assert.Equal(t, Empty, game.Current()[1][1])
	})

	t.Run("Error on step out of range", func(t *testing.T) {
		game := NewGame("123")

		assert.ErrorIs(t, game.JumpTo(1), apperror.ErrStepOutOfRange)
		assert.ErrorIs(t, game.JumpTo(-1), apperror.ErrStepOutOfRange)
		assert.Equal(t, 0, game.Step)
	})
}

func TestGame_Status(t *testing.T) {
	t.Run("Draw", func(t *testing.T) {
		// Given: a game whose current snapshot is a full board without a line
		game := NewGame("123")
		game.History = append(game.History, Board{
			{X, O, X},
			{X, O, O},
			{O, X, X},
		})
		game.Step = 1

		// Then: the status reports a draw
		assert.Equal(t, "Winner: draw", game.Status())
		assert.True(t, game.IsFinished())
	})

	t.Run("Winner O", func(t *testing.T) {
		game := NewGame("123")
		game.History = append(game.History, Board{
			{O, X, X},
			{Empty, O, X},
			{Empty, Empty, O},
		})
		game.Step = 1

		assert.Equal(t, "Winner: O", game.Status())
	})
}

func TestGame_MoveLabels(t *testing.T) {
	game := NewGame("123")
	require.NoError(t, game.ApplyHumanMove(Move{Row: 0, Col: 0}))
	require.NoError(t, game.ApplyComputerMove(Move{Row: 1, Col: 1}))

	assert.Equal(t, []string{"Go to game start", "Go to move #1", "Go to move #2"}, game.MoveLabels())
}

func TestGame_Validate(t *testing.T) {
	t.Run("Fresh and played games are valid", func(t *testing.T) {
		game := NewGame("123")
		require.NoError(t, game.Validate())

		require.NoError(t, game.ApplyHumanMove(Move{Row: 0, Col: 0}))
		require.NoError(t, game.JumpTo(0))
		require.NoError(t, game.Validate())
	})

	tests := []struct {
		name string
		game Game
	}{
		{name: "Step past history", game: Game{ID: "1", History: []Board{NewBoard()}, Step: 5}},
		{name: "Negative step", game: Game{ID: "1", History: []Board{NewBoard()}, Step: -1}},
		{name: "Empty history", game: Game{ID: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: validating a game with a broken step or history
			err := tt.game.Validate()

			// Then: it is reported as corrupted
			require.ErrorIs(t, err, apperror.ErrCorruptedGame)
		})
	}
}
