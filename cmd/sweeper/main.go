package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/game"
)

var configPath string

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		config.DefaultLogger().Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, logFile := config.NewLogger(cfg, os.Stderr)
	defer logFile.Close()

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("exit", slog.Any("error", err))
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	params, err := cfg.Game.Params()
	if err != nil {
		return err
	}

	session, err := game.New(logger, params, createRand(cfg.Game.Seed))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands := make(chan game.Command)
	runner := game.NewRunner(logger, session, newPrinter(out).Print)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(commands)
		return readCommands(gCtx, logger, in, commands)
	})
	g.Go(func() error {
		// the reader may be blocked on input; a finished runner ends the process
		defer stop()
		return runner.Run(gCtx, commands)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session %s: %w", session.ID, err)
	}
	return nil
}
