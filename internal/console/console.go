// Package console runs a game against the computer in a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const help = "commands: <row> <col> play, j <step> jump, n new game, q quit"

var errUnknownCommand = errors.New("unknown command")

type botService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type Console struct {
	logger *slog.Logger

	in  *bufio.Scanner
	out *termenv.Output

	bot  botService
	game *entity.Game
}

func New(logger *slog.Logger, in io.Reader, out *termenv.Output, bot botService) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewScanner(in),
		out:    out,
		bot:    bot,
		game:   entity.NewGame(uuid.NewString()),
	}
}

// Run reads commands until q, end of input or ctx is canceled.
// Cancellation returns at once, even while a read is pending.
func (that *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.println(help)
	that.render()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go that.readLines(ctx, lines, readErr)

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}

			if ctx.Err() != nil {
				return nil
			}

			quit, err := that.exec(strings.Fields(line))
			if quit {
				return nil
			}
			if err != nil {
				that.println(that.out.String("error: " + err.Error()).Foreground(that.out.Color("9")).String())
				continue
			}

			that.render()
		}
	}
}

// readLines feeds scanned lines to Run. It stops at end of input or once ctx is done.
func (that *Console) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)

	for that.in.Scan() {
		select {
		case lines <- that.in.Text():
		case <-ctx.Done():
			readErr <- nil
			return
		}
	}

	if err := that.in.Err(); err != nil {
		readErr <- fmt.Errorf("failed to read input: %w", err)
		return
	}

	readErr <- nil
}

func (that *Console) exec(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	switch {
	case args[0] == "q":
		return true, nil
	case args[0] == "n":
		that.game = entity.NewGame(uuid.NewString())
		that.logger.Debug("new game", "gameID", that.game.ID)
		return false, nil
	case args[0] == "j" && len(args) == 2:
		step, err := strconv.Atoi(args[1])
		if err != nil {
			return false, fmt.Errorf("invalid step %q", args[1])
		}
		return false, that.game.JumpTo(step)
	case len(args) == 2:
		move, err := parseMove(args)
		if err != nil {
			return false, err
		}
		return false, that.play(move)
	default:
		return false, fmt.Errorf("%w: %s", errUnknownCommand, help)
	}
}

func (that *Console) play(move entity.Move) error {
	if err := that.game.ApplyHumanMove(move); err != nil {
		return err
	}

	if that.game.IsFinished() {
		return nil
	}

	if _, err := that.bot.MakeTurn(that.game); err != nil {
		return fmt.Errorf("computer failed to move: %w", err)
	}

	return nil
}

func parseMove(args []string) (entity.Move, error) {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid row %q", args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid col %q", args[1])
	}

	return entity.Move{Row: row, Col: col}, nil
}

func (that *Console) render() {
	board := that.game.Current()

	for row := range entity.Size {
		cells := make([]string, entity.Size)
		for col := range entity.Size {
			cells[col] = that.mark(board[row][col])
		}
		that.println(" " + strings.Join(cells, " | "))
		if row < entity.Size-1 {
			that.println("---+---+---")
		}
	}

	that.println(fmt.Sprintf("step %d/%d", that.game.Step, len(that.game.History)-1))
	that.println(that.out.String(that.game.Status()).Bold().String())
}

func (that *Console) mark(cell entity.Cell) string {
	switch cell {
	case entity.X:
		return that.out.String(entity.PlayerX).Foreground(that.out.Color("12")).Bold().String()
	case entity.O:
		return that.out.String(entity.PlayerO).Foreground(that.out.Color("11")).Bold().String()
	default:
		return " "
	}
}

func (that *Console) println(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
