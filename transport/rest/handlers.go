package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GameHandlers interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	DeleteGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	JumpTo(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
	MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error)
	JumpTo(ctx context.Context, gameID string, step int) (*entity.Game, error)
}

type gameHandlers struct {
	logger *slog.Logger

	game gameUseCase
}

func NewGameHandlers(logger *slog.Logger, game gameUseCase) GameHandlers {
	return &gameHandlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

type moveView struct {
	Step  int    `json:"step"`
	Label string `json:"label"`
}

type gameView struct {
	ID         string       `json:"id"`
	Board      entity.Board `json:"board"`
	Step       int          `json:"step"`
	Steps      int          `json:"steps"`
	NextPlayer string       `json:"next_player"`
	Winner     string       `json:"winner"`
	Status     string       `json:"status"`
	Moves      []moveView   `json:"moves"`
}

type turnRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type jumpRequest struct {
	Step *int `json:"step"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newGameView(game *entity.Game) gameView {
	labels := game.MoveLabels()
	moves := make([]moveView, len(labels))
	for step, label := range labels {
		moves[step] = moveView{Step: step, Label: label}
	}

	view := gameView{
		ID:     game.ID,
		Board:  game.Current(),
		Step:   game.Step,
		Steps:  len(game.History),
		Winner: game.Outcome().String(),
		Status: game.Status(),
		Moves:  moves,
	}

	if !game.IsFinished() {
		view.NextPlayer = game.NextPlayer().String()
	}

	return view
}

func (that *gameHandlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newGameView(game))
}

func (that *gameHandlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *gameHandlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.game.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "DeleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *gameHandlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	move := entity.Move{Row: *req.Row, Col: *req.Col}

	game, err := that.game.MakeTurn(r.Context(), chi.URLParam(r, "id"), move)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *gameHandlers) JumpTo(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Step == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.game.JumpTo(r.Context(), chi.URLParam(r, "id"), *req.Step)
	if err != nil {
		that.writeError(w, "JumpTo", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *gameHandlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	that.logger.Debug("request rejected", "method", method, "error", err)
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *gameHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrIllegalMove), errors.Is(err, apperror.ErrStepOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
