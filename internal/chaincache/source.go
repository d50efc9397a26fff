package chaincache

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Entry is a wallet transaction and its confirmation depth as last seen by
// the cache.
type Entry struct {
	TransactionID chainhash.Hash
	Confirmations int64
}

// WalletSource lists the transactions known to the node's wallet.
type WalletSource interface {
	// ListTransactions returns up to count wallet entries, most recent
	// first, after skipping the skip most recent ones. A short page means
	// the listing is exhausted.
	ListTransactions(ctx context.Context, count, skip int) ([]Entry, error)

	// LastBlockHeight returns the height of the wallet's best block.
	LastBlockHeight(ctx context.Context) (int32, error)
}

// TransactionFetcher loads a transaction from the node's mempool or block
// store. It returns ErrTransactionNotFound when neither has it.
type TransactionFetcher interface {
	FetchTransaction(ctx context.Context, id chainhash.Hash) (*wire.MsgTx, error)
}
