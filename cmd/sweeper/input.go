package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/vancomm/sweeper/internal/game"
)

// readCommands parses in line by line until EOF or ctx is done. Lines that do
// not parse are logged and dropped.
func readCommands(ctx context.Context, logger *slog.Logger, in io.Reader, out chan<- game.Command) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			logger.Debug("> " + line)
			cmd, err := game.ParseCommand(line)
			if err != nil {
				logger.Warn("unable to parse command",
					slog.String("line", line), slog.Any("error", err))
				continue
			}
			select {
			case out <- cmd:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
