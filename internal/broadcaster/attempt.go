package broadcaster

import (
	"context"

	"github.com/gabapcia/txrelay/internal/pkg/logger"
	"github.com/gabapcia/txrelay/internal/pkg/types"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// spendIndex lazily collects the outpoints consumed by confirmed wallet
// transactions. It is built at most once per pass.
type spendIndex struct {
	ctx   context.Context
	cache Cache
	spent types.Set[wire.OutPoint]
}

func newSpendIndex(ctx context.Context, cache Cache) *spendIndex {
	return &spendIndex{ctx: ctx, cache: cache}
}

func (idx *spendIndex) outpoints() types.Set[wire.OutPoint] {
	if idx.spent != nil {
		return idx.spent
	}

	idx.spent = types.NewSet[wire.OutPoint]()
	for _, entry := range idx.cache.Entries() {
		if entry.Confirmations <= 0 {
			continue
		}

		tx, err := idx.cache.GetTransaction(idx.ctx, entry.TransactionID)
		if err != nil {
			logger.Debug(idx.ctx, "confirmed wallet transaction unavailable for double spend check",
				"tx.id", entry.TransactionID.String(),
				"error", err,
			)
			continue
		}

		for _, in := range tx.TxIn {
			idx.spent.Add(in.PreviousOutPoint)
		}
	}

	return idx.spent
}

func (idx *spendIndex) conflicts(tx *wire.MsgTx) bool {
	spent := idx.outpoints()
	for _, in := range tx.TxIn {
		if spent.Contains(in.PreviousOutPoint) {
			return true
		}
	}
	return false
}

// hasPlaceholderInput reports whether tx was enqueued before the id of the
// transaction it spends from was known.
func hasPlaceholderInput(tx *wire.MsgTx) bool {
	return len(tx.TxIn) == 0 || tx.TxIn[0].PreviousOutPoint.Hash == (chainhash.Hash{})
}

// attempt tries to deliver one record at the given height and removes it
// from the queue when it is due to expire.
func (s *service) attempt(ctx context.Context, record txstore.Record, height int32, spends *spendIndex) bool {
	delivered, expire := s.deliver(ctx, record, height, spends)
	if expire {
		s.expire(ctx, record)
	}

	return delivered
}

func (s *service) deliver(ctx context.Context, record txstore.Record, height int32, spends *spendIndex) (delivered, expire bool) {
	tx := record.Transaction

	if hasPlaceholderInput(tx) {
		logger.Debug(ctx, "transaction waits for its parent id")
		return false, false
	}

	expire = height >= record.ExpirationHeight

	if !blockchain.IsFinalizedTransaction(btcutil.NewTx(tx), height+1, s.clock.Now()) {
		logger.Debug(ctx, "transaction not final yet", "block.height", height)
		return false, expire
	}

	if spends.conflicts(tx) {
		logger.Debug(ctx, "transaction double spends a confirmed wallet transaction")
		return false, expire
	}

	s.instruments.attempts.Add(ctx, 1)

	result := s.submitter.SendTransaction(ctx, tx)
	if result.Succeeded {
		s.instruments.successes.Add(ctx, 1)

		if err := s.cache.ImportTransaction(ctx, tx, 0); err != nil {
			logger.Warn(ctx, "broadcasted transaction not imported into cache", "error", err)
		}

		logger.Info(ctx, "transaction broadcasted")
		return true, expire
	}

	rejection := result.Rejection
	logger.Info(ctx, "transaction rejected",
		"rejection.category", rejection.Category.String(),
		"rejection.code", rejection.Code,
		"rejection.message", rejection.Message,
	)

	if !rejection.Category.IsBenign() {
		expire = false
	}

	return false, expire
}

// expire moves record from the queue into the archive. An archived copy
// that already exists is left untouched. The record stays queued when the
// archive write fails.
func (s *service) expire(ctx context.Context, record txstore.Record) {
	id := record.ID().String()

	archived := txstore.ArchivedTransaction{Transaction: record.Transaction}
	if err := txstore.Upsert(ctx, s.store, txstore.ArchiveCollection, id, archived, txstore.KeepExisting); err != nil {
		logger.Error(ctx, "failed to archive expired transaction", "error", err)
		return
	}

	if err := s.store.Delete(ctx, txstore.BroadcastsCollection, id); err != nil {
		logger.Error(ctx, "failed to remove expired broadcast record", "error", err)
		return
	}

	s.instruments.expired.Add(ctx, 1)
	logger.Info(ctx, "broadcast record expired", "tx.expiration", record.ExpirationHeight)
}
