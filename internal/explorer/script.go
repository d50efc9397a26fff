package explorer

import (
	"bytes"
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// destinationScript resolves scriptPubKey to a single address and returns
// that address' canonical output script. It returns nil for scripts that do
// not pay a single address.
func destinationScript(scriptPubKey []byte, params *chaincfg.Params) []byte {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptPubKey, params)
	if err != nil || len(addrs) != 1 {
		return nil
	}

	script, err := txscript.PayToAddrScript(addrs[0])
	if err != nil {
		return nil
	}

	return script
}

func isPubKey(data []byte) bool {
	switch len(data) {
	case 33:
		return data[0] == 0x02 || data[0] == 0x03
	case 65:
		return data[0] == 0x04
	default:
		return false
	}
}

// signerScript infers the output script that in spends from its unlocking
// data. It understands pay-to-pubkey-hash, pay-to-script-hash (nested
// segwit included), pay-to-witness-pubkey-hash and
// pay-to-witness-script-hash inputs.
func signerScript(in *wire.TxIn, params *chaincfg.Params) []byte {
	pushes, err := txscript.PushedData(in.SignatureScript)
	if err != nil {
		return nil
	}

	var addr btcutil.Address
	switch {
	case len(pushes) == 0 && len(in.Witness) == 2 && isPubKey(in.Witness[1]):
		addr, err = btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(in.Witness[1]), params)
	case len(pushes) == 0 && len(in.Witness) > 0:
		witnessScript := in.Witness[len(in.Witness)-1]
		digest := sha256.Sum256(witnessScript)
		addr, err = btcutil.NewAddressWitnessScriptHash(digest[:], params)
	case len(pushes) == 2 && len(in.Witness) == 0 && isPubKey(pushes[1]):
		addr, err = btcutil.NewAddressPubKeyHash(btcutil.Hash160(pushes[1]), params)
	case len(pushes) > 0:
		addr, err = btcutil.NewAddressScriptHash(pushes[len(pushes)-1], params)
	default:
		return nil
	}
	if err != nil {
		return nil
	}

	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil
	}

	return script
}

// involves reports whether tx pays to or spends from the address whose
// output script is addrScript.
func involves(tx *wire.MsgTx, addrScript []byte, params *chaincfg.Params) bool {
	for _, out := range tx.TxOut {
		if bytes.Equal(out.PkScript, addrScript) {
			return true
		}
	}

	for _, in := range tx.TxIn {
		if bytes.Equal(signerScript(in, params), addrScript) {
			return true
		}
	}

	return false
}
