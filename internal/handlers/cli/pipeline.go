package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txrelay/internal/relay"

	"github.com/urfave/cli/v3"
)

// ErrRelayStopped is returned by the start command when the relay loop ends
// on its own.
var ErrRelayStopped = errors.New("relay stopped unexpectedly")

// startRelayCommand returns a CLI command that runs the relay loop: one
// broadcast pass right away and one for every new block.
//
// Usage example:
//
//	txrelay start
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func startRelayCommand(rl relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the relay loop that keeps pending transactions broadcast until they confirm or expire.",
		Usage:       "Runs the relay loop. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			reportCh, err := rl.Start(ctx)
			if err != nil {
				return err
			}
			defer rl.Close()

			for {
				select {
				case <-ctx.Done():
					return nil
				case _, ok := <-reportCh:
					if !ok {
						if ctx.Err() != nil {
							return nil
						}
						return ErrRelayStopped
					}
				}
			}
		},
	}
}
