// Package minimax picks the computer's move by searching the full game tree.
//
// O is the maximizing player and X the minimizing one. A 3x3 board has at most
// nine plies, so the search is exhaustive and needs no pruning or depth limit.
package minimax

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	winScore  = 10
	drawScore = 0
)

// Result describes the move chosen by a search.
type Result struct {
	Move  entity.Move
	Score int
	Nodes int
}

type Option func(*Engine)

// WithDepthPenalty makes quicker wins score higher and later losses score lower.
func WithDepthPenalty() Option {
	return func(e *Engine) {
		e.depthPenalty = true
	}
}

// Engine holds only search options and is safe for concurrent use.
type Engine struct {
	depthPenalty bool
}

func New(opts ...Option) *Engine {
	engine := &Engine{}
	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// BestMove returns O's optimal move with the default depth-independent scoring.
func BestMove(board entity.Board) (entity.Move, bool) {
	result, ok := New().Search(board)
	return result.Move, ok
}

// Search returns the best move for O. It reports false when the board is already
// decided or has no empty cell. Candidates are tried in row-major order and a later
// candidate replaces the current one only with a strictly higher score.
func (that *Engine) Search(board entity.Board) (Result, bool) {
	if board.Outcome().IsDecided() {
		return Result{}, false
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Result{}, false
	}

	var (
		result Result
		found  bool
	)

	for _, move := range moves {
		child := board
		child[move.Row][move.Col] = entity.O

		score := that.minimax(child, entity.X, 1, &result.Nodes)
		if !found || score > result.Score {
			result.Move = move
			result.Score = score
			found = true
		}
	}

	return result, true
}

// Evaluate returns the minimax value of board with toMove to play.
func (that *Engine) Evaluate(board entity.Board, toMove entity.Cell) int {
	var nodes int
	return that.minimax(board, toMove, 0, &nodes)
}

// minimax works on its own copy of board, every branch gets a fresh copy.
func (that *Engine) minimax(board entity.Board, toMove entity.Cell, depth int, nodes *int) int {
	*nodes++

	if outcome := board.Outcome(); outcome.IsDecided() {
		return that.score(outcome, depth)
	}

	maximizing := toMove == entity.O

	best := winScore + 1
	if maximizing {
		best = -winScore - 1
	}

	for _, move := range board.LegalMoves() {
		child := board
		child[move.Row][move.Col] = toMove

		score := that.minimax(child, toMove.Opponent(), depth+1, nodes)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}

func (that *Engine) score(outcome entity.Outcome, depth int) int {
	var score int
	switch outcome {
	case entity.WinO:
		score = winScore
	case entity.WinX:
		score = -winScore
	default:
		return drawScore
	}

	if !that.depthPenalty {
		return score
	}

	if score > 0 {
		return score - depth
	}

	return score + depth
}
