package bitcoind

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/gabapcia/txrelay/internal/explorer"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// MerkleProof implements explorer.ProofSource.
func (c *client) MerkleProof(ctx context.Context, id chainhash.Hash) (*wire.MsgMerkleBlock, error) {
	data, err := c.conn.Fetch(ctx, "gettxoutproof", []string{id.String()})
	if err != nil {
		if hasCode(err, codeInvalidAddressOrKey) {
			return nil, fmt.Errorf("%w: %s", explorer.ErrProofUnavailable, id)
		}
		return nil, err
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, err
	}

	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	var proof wire.MsgMerkleBlock
	if err := proof.BtcDecode(bytes.NewReader(raw), wire.ProtocolVersion, wire.BaseEncoding); err != nil {
		return nil, fmt.Errorf("decode merkle proof: %w", err)
	}

	return &proof, nil
}

// ImportPrunedFunds implements explorer.ProofImporter.
func (c *client) ImportPrunedFunds(ctx context.Context, tx *wire.MsgTx, proof *wire.MsgMerkleBlock) error {
	encodedTx, err := txstore.EncodeTransaction(tx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := proof.BtcEncode(&buf, wire.ProtocolVersion, wire.BaseEncoding); err != nil {
		return fmt.Errorf("encode merkle proof: %w", err)
	}

	_, err = c.conn.Fetch(ctx, "importprunedfunds", encodedTx, hex.EncodeToString(buf.Bytes()))
	return err
}
