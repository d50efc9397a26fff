package broadcaster

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/txrelay/internal/chaincache"
	"github.com/gabapcia/txrelay/internal/chaincache/mocks"
	"github.com/gabapcia/txrelay/internal/pkg/types"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/benbjohnson/clock"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestTx(prevs ...wire.OutPoint) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	for i := range prevs {
		tx.AddTxIn(wire.NewTxIn(&prevs[i], []byte{0x51}, nil))
	}
	tx.AddTxOut(wire.NewTxOut(5000, []byte{0x51}))
	tx.AddTxOut(wire.NewTxOut(6000, []byte{0x52}))
	return tx
}

func spendOf(tx *wire.MsgTx, index uint32) wire.OutPoint {
	return wire.OutPoint{Hash: tx.TxHash(), Index: index}
}

type fakeSubmitter struct {
	mu      sync.Mutex
	sent    []chainhash.Hash
	results map[chainhash.Hash]SubmitResult
}

func (f *fakeSubmitter) SendTransaction(_ context.Context, tx *wire.MsgTx) SubmitResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := tx.TxHash()
	f.sent = append(f.sent, id)

	if result, ok := f.results[id]; ok {
		return result
	}
	return Accepted()
}

func (f *fakeSubmitter) reject(tx *wire.MsgTx, category Category, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.results == nil {
		f.results = make(map[chainhash.Hash]SubmitResult)
	}
	f.results[tx.TxHash()] = Rejected(category, -26, message)
}

func (f *fakeSubmitter) sentIDs() []chainhash.Hash {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]chainhash.Hash(nil), f.sent...)
}

func newCacheMock(t *testing.T, height int32, entries []chaincache.Entry) *mocks.Cache {
	cache := mocks.NewCache(t)
	cache.EXPECT().BlockCount(mock.Anything).Return(height, nil).Maybe()
	cache.EXPECT().Entries().Return(entries).Maybe()
	cache.EXPECT().ImportTransaction(mock.Anything, mock.Anything, int64(0)).Return(nil).Maybe()
	return cache
}

func newTestService(t *testing.T, store txstore.Store, cache Cache, submitter Submitter, opts ...Option) *service {
	opts = append([]Option{WithClock(clock.NewMock())}, opts...)

	s, err := New(store, cache, submitter, opts...)
	require.NoError(t, err)
	return s
}

func enqueue(t *testing.T, store txstore.Store, tx *wire.MsgTx, expiration int32) {
	record := txstore.Record{Transaction: tx, ExpirationHeight: expiration}
	require.NoError(t, txstore.Upsert(t.Context(), store, txstore.BroadcastsCollection, record.ID().String(), record, txstore.KeepExisting))
}

func isPending(t *testing.T, store txstore.Store, tx *wire.MsgTx) bool {
	_, err := store.Get(t.Context(), txstore.BroadcastsCollection, tx.TxHash().String())
	if errors.Is(err, txstore.ErrNotFound) {
		return false
	}
	require.NoError(t, err)
	return true
}

func isArchived(t *testing.T, store txstore.Store, tx *wire.MsgTx) bool {
	_, err := store.Get(t.Context(), txstore.ArchiveCollection, tx.TxHash().String())
	if errors.Is(err, txstore.ErrNotFound) {
		return false
	}
	require.NoError(t, err)
	return true
}

func TestNew(t *testing.T) {
	store := txstore.NewMemoryStore()
	cache := mocks.NewCache(t)
	submitter := &fakeSubmitter{}

	_, err := New(nil, cache, submitter)
	assert.ErrorIs(t, err, ErrNilDependency)

	_, err = New(store, nil, submitter)
	assert.ErrorIs(t, err, ErrNilDependency)

	_, err = New(store, cache, nil)
	assert.ErrorIs(t, err, ErrNilDependency)

	s, err := New(store, cache, submitter)
	require.NoError(t, err)
	assert.Equal(t, int32(432), s.expirationBlocks)
}

func TestExpirationBlocks(t *testing.T) {
	assert.Equal(t, int32(432), expirationBlocks(72*time.Hour, chaincfg.MainNetParams.TargetTimePerBlock))
	assert.Equal(t, int32(3), expirationBlocks(25*time.Minute, 10*time.Minute))
	assert.Equal(t, int32(2), expirationBlocks(20*time.Minute, 10*time.Minute))
}

func TestBroadcast(t *testing.T) {
	t.Run("persists and delivers", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		cache := newCacheMock(t, 100, nil)
		submitter := &fakeSubmitter{}
		s := newTestService(t, store, cache, submitter)

		tx := newTestTx(wire.OutPoint{Hash: chainhash.Hash{1}})

		ok, err := s.Broadcast(t.Context(), tx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []chainhash.Hash{tx.TxHash()}, submitter.sentIDs())

		record, err := txstore.Get[txstore.Record](t.Context(), store, txstore.BroadcastsCollection, tx.TxHash().String())
		require.NoError(t, err)
		assert.Equal(t, int32(532), record.ExpirationHeight)

		cache.AssertCalled(t, "ImportTransaction", mock.Anything, tx, int64(0))
	})

	t.Run("keeps the first expiration on re-enqueue", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		tx := newTestTx(wire.OutPoint{Hash: chainhash.Hash{2}})

		first := newTestService(t, store, newCacheMock(t, 100, nil), &fakeSubmitter{})
		_, err := first.Broadcast(t.Context(), tx)
		require.NoError(t, err)

		second := newTestService(t, store, newCacheMock(t, 150, nil), &fakeSubmitter{})
		_, err = second.Broadcast(t.Context(), tx)
		require.NoError(t, err)

		record, err := txstore.Get[txstore.Record](t.Context(), store, txstore.BroadcastsCollection, tx.TxHash().String())
		require.NoError(t, err)
		assert.Equal(t, int32(532), record.ExpirationHeight)
	})

	t.Run("reports rejection without failing", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}
		tx := newTestTx(wire.OutPoint{Hash: chainhash.Hash{3}})
		submitter.reject(tx, CategoryRejected, "min relay fee not met")

		s := newTestService(t, store, newCacheMock(t, 100, nil), submitter)

		ok, err := s.Broadcast(t.Context(), tx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, isPending(t, store, tx))
	})

	t.Run("fails when the height is unknown", func(t *testing.T) {
		cache := mocks.NewCache(t)
		cache.EXPECT().BlockCount(mock.Anything).Return(int32(0), errors.New("node down"))

		s := newTestService(t, txstore.NewMemoryStore(), cache, &fakeSubmitter{})

		_, err := s.Broadcast(t.Context(), newTestTx(wire.OutPoint{Hash: chainhash.Hash{4}}))
		assert.Error(t, err)
	})
}

func TestTryBroadcastAll(t *testing.T) {
	t.Run("delivers parents before children", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}

		a := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xa0}})
		b := newTestTx(spendOf(a, 0))
		c := newTestTx(spendOf(b, 1))

		enqueue(t, store, c, 500)
		enqueue(t, store, a, 500)
		enqueue(t, store, b, 500)

		s := newTestService(t, store, newCacheMock(t, 100, nil), submitter)

		result, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		assert.Equal(t, []chainhash.Hash{a.TxHash(), b.TxHash(), c.TxHash()}, submitter.sentIDs())
		assert.Len(t, result.Broadcasted, 3)
		assert.Equal(t, 3, result.Monitored)
		assert.Equal(t, 3, result.KnownBroadcasted.Len())
	})

	t.Run("skips confirmed and hinted transactions", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}

		confirmed := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xb1}})
		hinted := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xb2}})
		fresh := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xb3}})
		for _, tx := range []*wire.MsgTx{confirmed, hinted, fresh} {
			enqueue(t, store, tx, 500)
		}

		entries := []chaincache.Entry{
			{TransactionID: confirmed.TxHash(), Confirmations: 3},
			{TransactionID: chainhash.Hash{0xff}, Confirmations: 0},
		}
		cache := newCacheMock(t, 100, entries)
		cache.EXPECT().GetTransaction(mock.Anything, confirmed.TxHash()).Return(confirmed, nil).Maybe()

		s := newTestService(t, store, cache, submitter)

		hint := types.NewSet(hinted.TxHash())
		result, err := s.TryBroadcastAll(t.Context(), hint)
		require.NoError(t, err)

		assert.Equal(t, []chainhash.Hash{fresh.TxHash()}, submitter.sentIDs())
		assert.True(t, result.KnownBroadcasted.Contains(confirmed.TxHash()))
		assert.True(t, result.KnownBroadcasted.Contains(hinted.TxHash()))
		assert.True(t, result.KnownBroadcasted.Contains(fresh.TxHash()))
		assert.False(t, result.KnownBroadcasted.Contains(chainhash.Hash{0xff}))
		assert.Equal(t, 1, hint.Len(), "the caller's hint must not be mutated")
	})

	t.Run("isolates per record failures", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}

		failing := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xc1}})
		ok := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xc2}})
		submitter.reject(failing, CategoryRejected, "connection reset")

		enqueue(t, store, failing, 500)
		enqueue(t, store, ok, 500)

		cache := mocks.NewCache(t)
		cache.EXPECT().BlockCount(mock.Anything).Return(int32(100), nil)
		cache.EXPECT().Entries().Return(nil)
		cache.EXPECT().ImportTransaction(mock.Anything, mock.Anything, int64(0)).Return(errors.New("disk full"))

		s := newTestService(t, store, cache, submitter)

		result, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		assert.Len(t, submitter.sentIDs(), 2)
		require.Len(t, result.Broadcasted, 1)
		assert.Equal(t, ok.TxHash(), result.Broadcasted[0].TxHash())
	})

	t.Run("unreadable records do not stop the pass", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}
		require.NoError(t, store.Upsert(t.Context(), txstore.BroadcastsCollection, "broken", []byte("{"), txstore.Overwrite))

		ready := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xc3}})
		enqueue(t, store, ready, 500)

		s := newTestService(t, store, newCacheMock(t, 100, nil), submitter)

		result, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Monitored)
		assert.Equal(t, []chainhash.Hash{ready.TxHash()}, submitter.sentIDs())
	})

	t.Run("a queued transaction without inputs does not block later passes", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}

		orphan := newTestTx()
		ready := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xc4}})

		s := newTestService(t, store, newCacheMock(t, 100, nil), submitter)

		sent, err := s.Broadcast(t.Context(), orphan)
		require.NoError(t, err)
		assert.False(t, sent)
		enqueue(t, store, ready, 500)

		result, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Monitored)
		assert.Equal(t, []chainhash.Hash{ready.TxHash()}, submitter.sentIDs())

		known, err := s.GetKnownTransaction(t.Context(), orphan.TxHash())
		require.NoError(t, err)
		assert.Equal(t, orphan.TxHash(), known.TxHash())
	})
}

func TestExpiration(t *testing.T) {
	const enqueuedAt = 100

	tx := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xd1}})

	t.Run("benign rejections expire on schedule", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}
		submitter.reject(tx, CategoryAlreadyInChain, "transaction already in block chain")

		first := newTestService(t, store, newCacheMock(t, enqueuedAt, nil), submitter)
		_, err := first.Broadcast(t.Context(), tx)
		require.NoError(t, err)

		expiration := int32(enqueuedAt) + first.expirationBlocks

		before := newTestService(t, store, newCacheMock(t, expiration-1, nil), submitter)
		_, err = before.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)
		assert.True(t, isPending(t, store, tx), "must not expire before its height")

		at := newTestService(t, store, newCacheMock(t, expiration, nil), submitter)
		_, err = at.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		assert.False(t, isPending(t, store, tx))
		assert.True(t, isArchived(t, store, tx))

		known, err := at.GetKnownTransaction(t.Context(), tx.TxHash())
		require.NoError(t, err)
		assert.Equal(t, tx.TxHash(), known.TxHash())

		_, err = at.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)
		assert.Len(t, submitter.sentIDs(), 3, "expired records are never attempted again")
	})

	t.Run("unknown rejections keep the record alive", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}
		submitter.reject(tx, CategoryRejected, "non-mandatory-script-verify-flag")
		enqueue(t, store, tx, 200)

		s := newTestService(t, store, newCacheMock(t, 250, nil), submitter)
		_, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		assert.True(t, isPending(t, store, tx))
		assert.False(t, isArchived(t, store, tx))
	})

	t.Run("successful delivery past expiration still removes the record", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		enqueue(t, store, tx, 200)

		s := newTestService(t, store, newCacheMock(t, 200, nil), &fakeSubmitter{})
		result, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		assert.Len(t, result.Broadcasted, 1)
		assert.False(t, isPending(t, store, tx))
		assert.True(t, isArchived(t, store, tx))
	})

	t.Run("archive keeps an existing copy", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		require.NoError(t, store.Upsert(t.Context(), txstore.ArchiveCollection, tx.TxHash().String(), []byte(`"sentinel"`), txstore.Overwrite))
		enqueue(t, store, tx, 200)

		submitter := &fakeSubmitter{}
		submitter.reject(tx, CategoryInputsSpent, "bad-txns-inputs-spent")

		s := newTestService(t, store, newCacheMock(t, 300, nil), submitter)
		_, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		value, err := store.Get(t.Context(), txstore.ArchiveCollection, tx.TxHash().String())
		require.NoError(t, err)
		assert.Equal(t, []byte(`"sentinel"`), value)
	})

	t.Run("record stays queued when the archive write fails", func(t *testing.T) {
		store := &archiveFailingStore{Store: txstore.NewMemoryStore()}
		enqueue(t, store, tx, 200)

		submitter := &fakeSubmitter{}
		submitter.reject(tx, CategoryInputsSpent, "bad-txns-inputs-spent")

		s := newTestService(t, store, newCacheMock(t, 300, nil), submitter)
		_, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		assert.True(t, isPending(t, store, tx))
		assert.False(t, isArchived(t, store, tx))

		known, err := s.GetKnownTransaction(t.Context(), tx.TxHash())
		require.NoError(t, err)
		assert.Equal(t, tx.TxHash(), known.TxHash())
	})
}

type archiveFailingStore struct {
	txstore.Store
}

func (s *archiveFailingStore) Upsert(ctx context.Context, collection, key string, value []byte, resolve txstore.ConflictResolver) error {
	if collection == txstore.ArchiveCollection {
		return errors.New("disk full")
	}
	return s.Store.Upsert(ctx, collection, key, value, resolve)
}

func TestDoubleSpendSuppression(t *testing.T) {
	outpoint := wire.OutPoint{Hash: chainhash.Hash{0xe1}, Index: 2}

	settled := newTestTx(outpoint)
	conflicting := newTestTx(outpoint, wire.OutPoint{Hash: chainhash.Hash{0xe2}})

	newCache := func(t *testing.T, height int32) *mocks.Cache {
		cache := newCacheMock(t, height, []chaincache.Entry{
			{TransactionID: settled.TxHash(), Confirmations: 2},
		})
		cache.EXPECT().GetTransaction(mock.Anything, settled.TxHash()).Return(settled, nil)
		return cache
	}

	store := txstore.NewMemoryStore()
	submitter := &fakeSubmitter{}
	enqueue(t, store, conflicting, 300)

	s := newTestService(t, store, newCache(t, 100), submitter)
	result, err := s.TryBroadcastAll(t.Context(), nil)
	require.NoError(t, err)

	assert.Empty(t, result.Broadcasted)
	assert.Empty(t, submitter.sentIDs())
	assert.True(t, isPending(t, store, conflicting))

	s = newTestService(t, store, newCache(t, 300), submitter)
	_, err = s.TryBroadcastAll(t.Context(), nil)
	require.NoError(t, err)

	assert.Empty(t, submitter.sentIDs())
	assert.False(t, isPending(t, store, conflicting), "expiration still applies")
}

func TestDeferredRecords(t *testing.T) {
	t.Run("placeholder inputs neither deliver nor expire", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}

		tx := newTestTx(wire.OutPoint{Index: 1})
		enqueue(t, store, tx, 10)

		s := newTestService(t, store, newCacheMock(t, 500, nil), submitter)
		_, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)

		assert.Empty(t, submitter.sentIDs())
		assert.True(t, isPending(t, store, tx))
	})

	t.Run("non final transactions wait", func(t *testing.T) {
		store := txstore.NewMemoryStore()
		submitter := &fakeSubmitter{}

		tx := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0xf1}})
		tx.LockTime = 150
		tx.TxIn[0].Sequence = 0
		enqueue(t, store, tx, 1000)

		s := newTestService(t, store, newCacheMock(t, 100, nil), submitter)
		_, err := s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)
		assert.Empty(t, submitter.sentIDs())

		s = newTestService(t, store, newCacheMock(t, 150, nil), submitter)
		_, err = s.TryBroadcastAll(t.Context(), nil)
		require.NoError(t, err)
		assert.Equal(t, []chainhash.Hash{tx.TxHash()}, submitter.sentIDs())
	})
}

func TestGetKnownTransaction(t *testing.T) {
	store := txstore.NewMemoryStore()
	s := newTestService(t, store, mocks.NewCache(t), &fakeSubmitter{})

	pending := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0x71}})
	archived := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0x72}})

	enqueue(t, store, pending, 100)
	require.NoError(t, txstore.Upsert(t.Context(), store, txstore.ArchiveCollection, archived.TxHash().String(),
		txstore.ArchivedTransaction{Transaction: archived}, txstore.KeepExisting))

	got, err := s.GetKnownTransaction(t.Context(), pending.TxHash())
	require.NoError(t, err)
	assert.Equal(t, pending.TxHash(), got.TxHash())

	got, err = s.GetKnownTransaction(t.Context(), archived.TxHash())
	require.NoError(t, err)
	assert.Equal(t, archived.TxHash(), got.TxHash())

	_, err = s.GetKnownTransaction(t.Context(), chainhash.Hash{0x73})
	assert.ErrorIs(t, err, txstore.ErrNotFound)
}

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	store := txstore.NewMemoryStore()
	submitter := &fakeSubmitter{}

	delivered := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0x81}})
	moot := newTestTx(wire.OutPoint{Hash: chainhash.Hash{0x82}})
	submitter.reject(moot, CategoryMempoolConflict, "txn-mempool-conflict")

	enqueue(t, store, delivered, 1000)
	enqueue(t, store, moot, 50)

	s := newTestService(t, store, newCacheMock(t, 100, nil), submitter, WithMeterProvider(provider))
	_, err := s.TryBroadcastAll(t.Context(), nil)
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	totals := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}

	assert.Equal(t, int64(2), totals["txrelay.broadcast.attempts"])
	assert.Equal(t, int64(1), totals["txrelay.broadcast.successes"])
	assert.Equal(t, int64(1), totals["txrelay.broadcast.expired"])
}

func TestCategory(t *testing.T) {
	assert.False(t, CategoryRejected.IsBenign())
	for _, c := range []Category{CategoryAlreadyInChain, CategoryInputsSpent, CategoryMempoolConflict, CategoryMissingInputs} {
		assert.True(t, c.IsBenign(), c.String())
	}
	assert.Equal(t, "rejected", Category(99).String())
}
