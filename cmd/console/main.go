package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

// main - plays a single terminal session against the computer, no storage involved.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	bot := service.NewBotService(logger, minimax.New())
	out := termenv.NewOutput(os.Stdout)

	if err := console.New(logger, os.Stdin, out, bot).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "console failed: %v\n", err)
		os.Exit(1)
	}
}
