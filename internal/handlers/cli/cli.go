package cli

import (
	"context"
	"os"

	"github.com/gabapcia/txrelay/internal/broadcaster"
	"github.com/gabapcia/txrelay/internal/explorer"
	"github.com/gabapcia/txrelay/internal/relay"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the txrelay CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the relay loop until interrupted.
//   - `broadcast`: Enqueues a raw transaction and tries to send it.
//   - `status`: Reports the confirmations of a transaction.
//   - `pending`: Lists the transactions waiting for delivery.
//   - `history`: Lists wallet transactions touching a script.
//   - `track`: Makes the node's wallet follow a script.
func Run(ctx context.Context, rl relay.Service, bc broadcaster.Service, ex explorer.Service) error {
	return newApp(rl, bc, ex).Run(ctx, os.Args)
}

func newApp(rl relay.Service, bc broadcaster.Service, ex explorer.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txrelay",
		Description:           "Command-line interface for the txrelay broadcast service.",
		Usage:                 "txrelay [command] [flags]",
		Commands: []*cli.Command{
			startRelayCommand(rl),
			broadcastCommand(bc),
			statusCommand(bc, ex),
			pendingCommand(bc),
			historyCommand(ex),
			trackCommand(ex),
		},
	}
}
