package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type searcher interface {
	Search(board entity.Board) (minimax.Result, bool)
}

type botService struct {
	logger *slog.Logger
	engine searcher
}

func NewBotService(logger *slog.Logger, engine searcher) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		engine: engine,
	}
}

// MakeTurn plays the computer's reply on the current snapshot of the game.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	result, ok := that.engine.Search(game.Current())
	if !ok {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	if err := game.ApplyComputerMove(result.Move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "move", result.Move.String(), "score", result.Score, "nodes", result.Nodes)

	return result.Move, nil
}
