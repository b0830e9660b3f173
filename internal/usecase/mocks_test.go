package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type mockGameService struct {
	mock.Mock
}

func (m *mockGameService) CreateGame(ctx context.Context) (*entity.Game, error) {
	args := m.Called(ctx)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *mockGameService) DeleteGame(ctx context.Context, gameID string) error {
	return m.Called(ctx, gameID).Error(0)
}

type mockBotService struct {
	mock.Mock
}

func (m *mockBotService) MakeTurn(game *entity.Game) (entity.Move, error) {
	args := m.Called(game)
	move, _ := args.Get(0).(entity.Move)
	return move, args.Error(1)
}
