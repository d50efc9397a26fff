// Package bitcoind adapts a bitcoind-compatible node's JSON-RPC interface to
// the collaborators used by the chain cache, the broadcast engine and the
// explorer.
package bitcoind

import (
	"errors"

	"github.com/gabapcia/txrelay/internal/broadcaster"
	"github.com/gabapcia/txrelay/internal/chaincache"
	"github.com/gabapcia/txrelay/internal/explorer"
	"github.com/gabapcia/txrelay/internal/pkg/transport/jsonrpc"

	"github.com/btcsuite/btcd/btcjson"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RPC error codes bitcoind uses that the adapter branches on.
const (
	codeInvalidAddressOrKey = int(btcjson.ErrRPCInvalidAddressOrKey)
	codeInvalidParameter    = -8
	codeAlreadyInChain      = -27
)

// client talks to a single node. It is safe for concurrent use as long as
// the underlying connection is.
type client struct {
	conn jsonrpc.Client
}

var (
	_ chaincache.WalletSource       = (*client)(nil)
	_ chaincache.TransactionFetcher = (*client)(nil)
	_ broadcaster.Submitter         = (*client)(nil)
	_ explorer.ChainView            = (*client)(nil)
	_ explorer.Wallet               = (*client)(nil)
	_ explorer.TransactionLookup    = (*client)(nil)
	_ explorer.ProofSource          = (*client)(nil)
	_ explorer.ProofImporter        = (*client)(nil)
	_ explorer.ScriptWatcher        = (*client)(nil)
)

// NewClient wraps conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// hasCode reports whether err is a provider error with the given code.
func hasCode(err error, code int) bool {
	var rpcErr *jsonrpc.Error
	return errors.As(err, &rpcErr) && rpcErr.Code == code
}
