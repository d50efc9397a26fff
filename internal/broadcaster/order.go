package broadcaster

import (
	"bytes"
	"slices"

	"github.com/gabapcia/txrelay/internal/pkg/types"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

func compareHash(a, b chainhash.Hash) int {
	return bytes.Compare(a[:], b[:])
}

// topologicalOrder sorts records so that a transaction comes after every
// pending transaction whose outputs it spends.
//
// Ties are broken by txid to keep passes reproducible. Records caught in a
// dependency cycle cannot be ordered; they are appended at the end in txid
// order.
func topologicalOrder(records []txstore.Record) []txstore.Record {
	ids := make([]chainhash.Hash, len(records))
	index := make(map[chainhash.Hash]int, len(records))
	for i, r := range records {
		ids[i] = r.ID()
		index[ids[i]] = i
	}

	pending := make([]int, len(records))
	children := make([][]int, len(records))
	for i, r := range records {
		parents := types.NewSet[int]()
		for _, in := range r.Transaction.TxIn {
			if p, ok := index[in.PreviousOutPoint.Hash]; ok && p != i {
				parents.Add(p)
			}
		}

		pending[i] = parents.Len()
		for p := range parents {
			children[p] = append(children[p], i)
		}
	}

	byID := func(a, b int) int { return compareHash(ids[a], ids[b]) }

	var ready []int
	for i := range records {
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}
	slices.SortFunc(ready, byID)

	ordered := make([]txstore.Record, 0, len(records))
	placed := make([]bool, len(records))
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]

		ordered = append(ordered, records[next])
		placed[next] = true

		released := false
		for _, child := range children[next] {
			pending[child]--
			if pending[child] == 0 {
				ready = append(ready, child)
				released = true
			}
		}
		if released {
			slices.SortFunc(ready, byID)
		}
	}

	var cyclic []int
	for i := range records {
		if !placed[i] {
			cyclic = append(cyclic, i)
		}
	}
	slices.SortFunc(cyclic, byID)
	for _, i := range cyclic {
		ordered = append(ordered, records[i])
	}

	return ordered
}
