package bitcoind

import (
	"context"

	"github.com/gabapcia/txrelay/internal/chaincache"
	"github.com/gabapcia/txrelay/internal/explorer"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// FetchTransaction implements chaincache.TransactionFetcher. Without a
// transaction index the node only finds mempool and wallet transactions.
func (c *client) FetchTransaction(ctx context.Context, id chainhash.Hash) (*wire.MsgTx, error) {
	data, err := c.conn.Fetch(ctx, "getrawtransaction", id.String(), false)
	if err != nil {
		if hasCode(err, codeInvalidAddressOrKey) {
			return nil, chaincache.ErrTransactionNotFound
		}
		return nil, err
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, err
	}

	return txstore.DecodeTransaction(encoded)
}

// FetchConfirmingBlockID implements explorer.TransactionLookup.
func (c *client) FetchConfirmingBlockID(ctx context.Context, id chainhash.Hash) (chainhash.Hash, error) {
	data, err := c.conn.Fetch(ctx, "getrawtransaction", id.String(), true)
	if err != nil {
		if hasCode(err, codeInvalidAddressOrKey) {
			return chainhash.Hash{}, chaincache.ErrTransactionNotFound
		}
		return chainhash.Hash{}, err
	}

	var result btcjson.TxRawResult
	if err := json.Unmarshal(data, &result); err != nil {
		return chainhash.Hash{}, err
	}

	if result.BlockHash == "" {
		return chainhash.Hash{}, explorer.ErrBlockNotFound
	}

	blockID, err := chainhash.NewHashFromStr(result.BlockHash)
	if err != nil {
		return chainhash.Hash{}, err
	}

	return *blockID, nil
}
