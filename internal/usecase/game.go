package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error)
	JumpTo(ctx context.Context, gameID string, step int) (*entity.Game, error)
}

type gameService interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type gameUseCase struct {
	logger *slog.Logger

	gameService gameService
	botService  botService
}

func NewGameUseCase(logger *slog.Logger, gameService gameService, botService botService) GameUseCase {
	return &gameUseCase{
		logger:      logger.With("component", "usecase"),
		gameService: gameService,
		botService:  botService,
	}
}

func (that *gameUseCase) NewGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// MakeTurn applies the human move and, unless that ended the game, the computer's reply.
// The game is saved once both moves are on the history.
func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.ApplyHumanMove(move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if !game.IsFinished() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Outcome().String())
	}

	return game, nil
}

func (that *gameUseCase) JumpTo(ctx context.Context, gameID string, step int) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.JumpTo(step); err != nil {
		return game, fmt.Errorf("failed to jump: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}
