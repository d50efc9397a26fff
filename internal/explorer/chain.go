package explorer

import (
	"context"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrBlockNotFound is returned by collaborators for unknown blocks and
	// for transactions that are not in any block yet.
	ErrBlockNotFound = errors.New("block not found")

	// ErrProofUnavailable is returned by a ProofSource that cannot produce a
	// merkle proof for a transaction.
	ErrProofUnavailable = errors.New("merkle proof unavailable")

	// ErrUnsupported is returned by optional collaborators that were not
	// configured.
	ErrUnsupported = errors.New("operation not supported")
)

// ChainView answers questions about the node's active chain.
type ChainView interface {
	TipHeight(ctx context.Context) (int32, error)
	BlockHeight(ctx context.Context, blockID chainhash.Hash) (int32, error)
	BlockHash(ctx context.Context, height int32) (chainhash.Hash, error)
}

// Wallet exposes the block the node's wallet last processed.
type Wallet interface {
	LastObservedBlockID(ctx context.Context) (chainhash.Hash, error)
}

// TransactionLookup finds arbitrary transactions in the mempool or the
// block store.
type TransactionLookup interface {
	FetchTransaction(ctx context.Context, id chainhash.Hash) (*wire.MsgTx, error)

	// FetchConfirmingBlockID returns ErrBlockNotFound while the transaction
	// is unconfirmed.
	FetchConfirmingBlockID(ctx context.Context, id chainhash.Hash) (chainhash.Hash, error)
}

// ProofSource produces merkle proofs for confirmed wallet transactions.
type ProofSource interface {
	MerkleProof(ctx context.Context, id chainhash.Hash) (*wire.MsgMerkleBlock, error)
}

// ProofImporter registers a transaction proven by a merkle block with the
// node's wallet.
type ProofImporter interface {
	ImportPrunedFunds(ctx context.Context, tx *wire.MsgTx, proof *wire.MsgMerkleBlock) error
}

// ScriptWatcher makes the node's wallet follow a script without owning its
// keys.
type ScriptWatcher interface {
	WatchScript(ctx context.Context, script []byte) error
}

type nopProofSource struct{}

func (nopProofSource) MerkleProof(context.Context, chainhash.Hash) (*wire.MsgMerkleBlock, error) {
	return nil, ErrProofUnavailable
}

type nopProofImporter struct{}

func (nopProofImporter) ImportPrunedFunds(context.Context, *wire.MsgTx, *wire.MsgMerkleBlock) error {
	return ErrUnsupported
}

type nopScriptWatcher struct{}

func (nopScriptWatcher) WatchScript(context.Context, []byte) error {
	return ErrUnsupported
}
