package broadcaster

import (
	"context"

	"github.com/btcsuite/btcd/wire"
)

// Category is the outcome class of a rejected submission.
type Category int

const (
	// CategoryRejected covers every failure without a known benign
	// signature, transport failures included. Records stay alive.
	CategoryRejected Category = iota

	// CategoryAlreadyInChain means the transaction is already mined.
	CategoryAlreadyInChain

	// CategoryInputsSpent means another transaction spent the inputs.
	CategoryInputsSpent

	// CategoryMempoolConflict means a conflicting transaction is in the
	// mempool.
	CategoryMempoolConflict

	// CategoryMissingInputs means the node does not know the inputs.
	CategoryMissingInputs
)

func (c Category) String() string {
	switch c {
	case CategoryAlreadyInChain:
		return "already-in-chain"
	case CategoryInputsSpent:
		return "inputs-spent"
	case CategoryMempoolConflict:
		return "mempool-conflict"
	case CategoryMissingInputs:
		return "missing-inputs"
	default:
		return "rejected"
	}
}

// IsBenign reports whether the rejection means the transaction is moot:
// either accepted already or superseded for good.
func (c Category) IsBenign() bool {
	switch c {
	case CategoryAlreadyInChain, CategoryInputsSpent, CategoryMempoolConflict, CategoryMissingInputs:
		return true
	default:
		return false
	}
}

// Rejection describes why the network refused a transaction.
type Rejection struct {
	Category Category
	Code     int
	Message  string
}

// SubmitResult is the structured outcome of a submission.
type SubmitResult struct {
	Succeeded bool
	Rejection Rejection
}

// Accepted is the SubmitResult of a successful submission.
func Accepted() SubmitResult {
	return SubmitResult{Succeeded: true}
}

// Rejected builds a failed SubmitResult.
func Rejected(category Category, code int, message string) SubmitResult {
	return SubmitResult{Rejection: Rejection{Category: category, Code: code, Message: message}}
}

// Submitter hands transactions to the network. Implementations translate
// their own failures into a Rejection instead of returning errors.
type Submitter interface {
	SendTransaction(ctx context.Context, tx *wire.MsgTx) SubmitResult
}
