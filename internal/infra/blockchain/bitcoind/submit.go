package bitcoind

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/txrelay/internal/broadcaster"
	"github.com/gabapcia/txrelay/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/btcsuite/btcd/wire"
)

// rejectSuffixes maps the lower-cased tail of a rejection message to its
// category.
var rejectSuffixes = []struct {
	suffix   string
	category broadcaster.Category
}{
	{"bad-txns-inputs-spent", broadcaster.CategoryInputsSpent},
	{"txn-mempool-conflict", broadcaster.CategoryMempoolConflict},
	{"missing inputs", broadcaster.CategoryMissingInputs},
}

// SendTransaction implements broadcaster.Submitter.
func (c *client) SendTransaction(ctx context.Context, tx *wire.MsgTx) broadcaster.SubmitResult {
	encoded, err := txstore.EncodeTransaction(tx)
	if err != nil {
		return broadcaster.Rejected(broadcaster.CategoryRejected, 0, err.Error())
	}

	if _, err := c.conn.Fetch(ctx, "sendrawtransaction", encoded); err != nil {
		return classify(err)
	}

	return broadcaster.Accepted()
}

// classify turns a submission failure into a SubmitResult. Anything that is
// not a recognized provider error stays retryable.
func classify(err error) broadcaster.SubmitResult {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return broadcaster.Rejected(broadcaster.CategoryRejected, 0, err.Error())
	}

	if rpcErr.Code == codeAlreadyInChain {
		return broadcaster.Rejected(broadcaster.CategoryAlreadyInChain, rpcErr.Code, rpcErr.Message)
	}

	message := strings.ToLower(rpcErr.Message)
	for _, s := range rejectSuffixes {
		if strings.HasSuffix(message, s.suffix) {
			return broadcaster.Rejected(s.category, rpcErr.Code, rpcErr.Message)
		}
	}

	return broadcaster.Rejected(broadcaster.CategoryRejected, rpcErr.Code, rpcErr.Message)
}
