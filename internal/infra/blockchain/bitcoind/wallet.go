package bitcoind

import (
	"context"
	"fmt"
	"slices"

	"github.com/gabapcia/txrelay/internal/chaincache"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ListTransactions implements chaincache.WalletSource.
//
// listtransactions pages from the newest entry backwards but orders each
// page oldest first, so every page is reversed. Watch-only entries are
// included since tracked scripts are imported without keys.
func (c *client) ListTransactions(ctx context.Context, count, skip int) ([]chaincache.Entry, error) {
	data, err := c.conn.Fetch(ctx, "listtransactions", "*", count, skip, true)
	if err != nil {
		return nil, err
	}

	var results []btcjson.ListTransactionsResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}

	entries := make([]chaincache.Entry, 0, len(results))
	for _, result := range slices.Backward(results) {
		id, err := chainhash.NewHashFromStr(result.TxID)
		if err != nil {
			return nil, fmt.Errorf("decode wallet txid %q: %w", result.TxID, err)
		}

		entries = append(entries, chaincache.Entry{
			TransactionID: *id,
			Confirmations: max(0, result.Confirmations),
		})
	}

	return entries, nil
}

// LastBlockHeight implements chaincache.WalletSource.
func (c *client) LastBlockHeight(ctx context.Context) (int32, error) {
	return c.TipHeight(ctx)
}

// LastObservedBlockID implements explorer.Wallet.
func (c *client) LastObservedBlockID(ctx context.Context) (chainhash.Hash, error) {
	data, err := c.conn.Fetch(ctx, "getbestblockhash")
	if err != nil {
		return chainhash.Hash{}, err
	}

	return decodeHash(data)
}

// WatchScript implements explorer.ScriptWatcher. The script is imported
// without a rescan.
func (c *client) WatchScript(ctx context.Context, script []byte) error {
	_, err := c.conn.Fetch(ctx, "importaddress", fmt.Sprintf("%x", script), "", false)
	return err
}

func decodeHash(data []byte) (chainhash.Hash, error) {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return chainhash.Hash{}, err
	}

	hash, err := chainhash.NewHashFromStr(encoded)
	if err != nil {
		return chainhash.Hash{}, err
	}

	return *hash, nil
}
