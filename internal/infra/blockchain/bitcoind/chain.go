package bitcoind

import (
	"context"

	"github.com/gabapcia/txrelay/internal/explorer"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// TipHeight implements explorer.ChainView.
func (c *client) TipHeight(ctx context.Context) (int32, error) {
	data, err := c.conn.Fetch(ctx, "getblockcount")
	if err != nil {
		return 0, err
	}

	var height int32
	return height, json.Unmarshal(data, &height)
}

// BlockHeight implements explorer.ChainView.
func (c *client) BlockHeight(ctx context.Context, blockID chainhash.Hash) (int32, error) {
	data, err := c.conn.Fetch(ctx, "getblockheader", blockID.String(), true)
	if err != nil {
		if hasCode(err, codeInvalidAddressOrKey) {
			return 0, explorer.ErrBlockNotFound
		}
		return 0, err
	}

	var header btcjson.GetBlockHeaderVerboseResult
	if err := json.Unmarshal(data, &header); err != nil {
		return 0, err
	}

	return header.Height, nil
}

// BlockHash implements explorer.ChainView.
func (c *client) BlockHash(ctx context.Context, height int32) (chainhash.Hash, error) {
	data, err := c.conn.Fetch(ctx, "getblockhash", height)
	if err != nil {
		if hasCode(err, codeInvalidParameter) {
			return chainhash.Hash{}, explorer.ErrBlockNotFound
		}
		return chainhash.Hash{}, err
	}

	return decodeHash(data)
}
