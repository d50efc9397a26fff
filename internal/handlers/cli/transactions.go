package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gabapcia/txrelay/internal/broadcaster"
	"github.com/gabapcia/txrelay/internal/chaincache"
	"github.com/gabapcia/txrelay/internal/explorer"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/urfave/cli/v3"
)

// broadcastCommand returns a CLI command that enqueues a signed transaction.
//
// Usage example:
//
//	txrelay broadcast --tx 0200000001...
func broadcastCommand(bc broadcaster.Service) *cli.Command {
	return &cli.Command{
		Name:        "broadcast",
		Description: "Enqueue a signed transaction; it is retried every block until it confirms or expires.",
		Usage:       "Broadcasts a raw transaction. Must provide the hex encoded transaction.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tx",
				Usage:    "Hex encoded signed transaction",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tx, err := txstore.DecodeTransaction(c.String("tx"))
			if err != nil {
				return fmt.Errorf("decode transaction: %w", err)
			}

			sent, err := bc.Broadcast(ctx, tx)
			if err != nil {
				return err
			}

			state := "queued"
			if sent {
				state = "sent"
			}

			_, err = fmt.Fprintf(c.Root().Writer, "%s %s\n", tx.TxHash(), state)
			return err
		},
	}
}

// statusCommand returns a CLI command that reports where a transaction
// stands: its confirmations on chain, or unconfirmed when only the relay knows
// it.
//
// Usage example:
//
//	txrelay status --txid 4a5e1e4b...
func statusCommand(bc broadcaster.Service, ex explorer.Service) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Report the confirmations of a transaction, or whether it is still waiting for delivery.",
		Usage:       "Shows a transaction's status. Must provide the transaction id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "txid",
				Usage:    "Transaction id",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := chainhash.NewHashFromStr(c.String("txid"))
			if err != nil {
				return fmt.Errorf("decode txid: %w", err)
			}

			info, err := ex.GetTransaction(ctx, *id)
			switch {
			case err == nil:
				_, err = fmt.Fprintf(c.Root().Writer, "%s confirmations=%d\n", id, info.Confirmations)
				return err
			case !errors.Is(err, chaincache.ErrTransactionNotFound):
				return err
			}

			if _, err := bc.GetKnownTransaction(ctx, *id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "%s unconfirmed\n", id)
			return err
		},
	}
}

// pendingCommand returns a CLI command that lists the transactions waiting
// for delivery in the order they are sent.
//
// Usage example:
//
//	txrelay pending
func pendingCommand(bc broadcaster.Service) *cli.Command {
	return &cli.Command{
		Name:        "pending",
		Description: "List the transactions waiting for delivery, parents first.",
		Usage:       "Lists pending transactions with their expiration height.",
		Action: func(ctx context.Context, c *cli.Command) error {
			records, err := bc.Transactions(ctx)
			if err != nil {
				return err
			}

			for _, record := range records {
				if _, err := fmt.Fprintf(c.Root().Writer, "%s expiration=%d\n", record.ID(), record.ExpirationHeight); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// historyCommand returns a CLI command that lists the wallet transactions
// paying to or spending from the address behind a script.
//
// Usage example:
//
//	txrelay history --script 76a914...88ac --proof
func historyCommand(ex explorer.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "List wallet transactions that pay to or spend from the address of a script.",
		Usage:       "Lists transactions for a script. Must provide the hex encoded output script.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "script",
				Usage:    "Hex encoded output script",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "proof",
				Usage: "Only list confirmed transactions with a merkle proof",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			script, err := hex.DecodeString(c.String("script"))
			if err != nil {
				return fmt.Errorf("decode script: %w", err)
			}

			infos, err := ex.GetTransactions(ctx, script, c.Bool("proof"))
			if err != nil {
				return err
			}

			for _, info := range infos {
				if _, err := fmt.Fprintf(c.Root().Writer, "%s confirmations=%d\n", info.Transaction.TxHash(), info.Confirmations); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// trackCommand returns a CLI command that makes the node's wallet follow a
// script it holds no keys for.
//
// Usage example:
//
//	txrelay track --script 0014...
func trackCommand(ex explorer.Service) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Make the node's wallet follow a script so its transactions show up in the cache.",
		Usage:       "Tracks a script. Must provide the hex encoded output script.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "script",
				Usage:    "Hex encoded output script",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			script, err := hex.DecodeString(c.String("script"))
			if err != nil {
				return fmt.Errorf("decode script: %w", err)
			}

			return ex.Track(ctx, script)
		},
	}
}
