package txstore

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Record is a transaction waiting to be delivered to the network.
//
// It is abandoned once the chain height reaches ExpirationHeight.
type Record struct {
	Transaction      *wire.MsgTx
	ExpirationHeight int32
}

type recordJSON struct {
	Transaction string `json:"transaction"`
	Expiration  int32  `json:"expiration"`
}

// ID returns the transaction id the record is keyed by.
func (r Record) ID() chainhash.Hash {
	return r.Transaction.TxHash()
}

func (r Record) MarshalJSON() ([]byte, error) {
	encoded, err := EncodeTransaction(r.Transaction)
	if err != nil {
		return nil, err
	}

	return json.Marshal(recordJSON{Transaction: encoded, Expiration: r.ExpirationHeight})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	tx, err := DecodeTransaction(raw.Transaction)
	if err != nil {
		return err
	}

	r.Transaction = tx
	r.ExpirationHeight = raw.Expiration
	return nil
}

// ArchivedTransaction is a raw transaction kept in ArchiveCollection. It is
// stored as a bare hex string.
type ArchivedTransaction struct {
	Transaction *wire.MsgTx
}

func (a ArchivedTransaction) MarshalJSON() ([]byte, error) {
	encoded, err := EncodeTransaction(a.Transaction)
	if err != nil {
		return nil, err
	}

	return json.Marshal(encoded)
}

func (a *ArchivedTransaction) UnmarshalJSON(data []byte) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}

	tx, err := DecodeTransaction(encoded)
	if err != nil {
		return err
	}

	a.Transaction = tx
	return nil
}

// EncodeTransaction returns the hex form of tx's wire serialization,
// witness data included.
func EncodeTransaction(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf.Bytes()), nil
}

// DecodeTransaction parses a hex encoded wire transaction.
//
// A transaction without inputs or witnesses serializes with a zero input
// count that reads like a segwit marker, so the witness decoding is retried
// without witness data when it fails or leaves bytes behind.
func DecodeTransaction(encoded string) (*wire.MsgTx, error) {
	data, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	r := bytes.NewReader(data)
	if err := tx.Deserialize(r); err == nil && r.Len() == 0 {
		return tx, nil
	}

	tx = wire.NewMsgTx(wire.TxVersion)
	r = bytes.NewReader(data)
	if err := tx.DeserializeNoWitness(r); err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after transaction", r.Len())
	}

	return tx, nil
}
