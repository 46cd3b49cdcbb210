package journal_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/typesignal/pkg/typesignal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) journal.Store

func newRecord(signal, source string, at time.Time) journal.Record {
	return journal.Record{
		ID:      uuid.NewString(),
		Signal:  signal,
		Source:  source,
		Senders: []string{"sender"},
		Payload: map[string]any{"total": 12.5, "currency": "EUR"},
		Time:    at,
	}
}

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run(name+"/Append_and_List", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		rec := newRecord("created", "shop.Order", base)
		rec.Cascade = true
		stored, err := store.Append(rec)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.Sequence)

		records, err := store.List(journal.Filter{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		got := records[0]
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, "created", got.Signal)
		assert.True(t, got.Cascade)
		assert.Equal(t, "shop.Order", got.Source)
		assert.Equal(t, []string{"sender"}, got.Senders)
		assert.Equal(t, 12.5, got.Payload["total"])
		assert.Equal(t, "EUR", got.Payload["currency"])
		assert.True(t, base.Equal(got.Time))
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		records, err := store.List(journal.Filter{Signal: "nothing"})
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run(name+"/List_Ordered", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		for i, signal := range []string{"a", "b", "c"} {
			_, err := store.Append(newRecord(signal, "shop.Order", base.Add(time.Duration(i)*time.Second)))
			require.NoError(t, err)
		}

		records, err := store.List(journal.Filter{})
		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, rec := range records {
			assert.Equal(t, int64(i+1), rec.Sequence)
		}
		assert.Equal(t, "a", records[0].Signal)
		assert.Equal(t, "c", records[2].Signal)
	})

	t.Run(name+"/List_Filter", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Append(newRecord("created", "shop.Order", base))
		require.NoError(t, err)
		_, err = store.Append(newRecord("paid", "shop.Order", base.Add(time.Minute)))
		require.NoError(t, err)
		_, err = store.Append(newRecord("created", "shop.Invoice", base.Add(2*time.Minute)))
		require.NoError(t, err)

		bySignal, err := store.List(journal.Filter{Signal: "created"})
		require.NoError(t, err)
		assert.Len(t, bySignal, 2)

		bySource, err := store.List(journal.Filter{Source: "shop.Order"})
		require.NoError(t, err)
		assert.Len(t, bySource, 2)

		both, err := store.List(journal.Filter{Signal: "created", Source: "shop.Invoice"})
		require.NoError(t, err)
		require.Len(t, both, 1)
		assert.Equal(t, int64(3), both[0].Sequence)

		since, err := store.List(journal.Filter{Since: base.Add(30 * time.Second)})
		require.NoError(t, err)
		assert.Len(t, since, 2)
	})

	t.Run(name+"/List_LimitKeepsNewest", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		for i := 0; i < 5; i++ {
			_, err := store.Append(newRecord("tick", "clock.Clock", base.Add(time.Duration(i)*time.Second)))
			require.NoError(t, err)
		}

		records, err := store.List(journal.Filter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, int64(4), records[0].Sequence)
		assert.Equal(t, int64(5), records[1].Sequence)
	})

	t.Run(name+"/CountBySignal", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		for _, signal := range []string{"created", "paid", "created"} {
			_, err := store.Append(newRecord(signal, "shop.Order", base))
			require.NoError(t, err)
		}

		counts, err := store.CountBySignal()
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"created": 2, "paid": 1}, counts)
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())

		_, err := store.Append(newRecord("created", "shop.Order", base))
		assert.ErrorIs(t, err, journal.ErrStoreClosed)
		_, err = store.List(journal.Filter{})
		assert.ErrorIs(t, err, journal.ErrStoreClosed)
		_, err = store.CountBySignal()
		assert.ErrorIs(t, err, journal.ErrStoreClosed)
	})
}

func TestStoreContract(t *testing.T) {
	storeContractTest(t, "MemoryStore", func(t *testing.T) journal.Store {
		return journal.NewMemoryStore()
	})

	storeContractTest(t, "SQLiteStore", func(t *testing.T) journal.Store {
		store, err := journal.NewSQLiteStore(filepath.Join(t.TempDir(), "journal.db"))
		require.NoError(t, err)
		return store
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	store, err := journal.NewSQLiteStore(path)
	require.NoError(t, err)
	_, err = store.Append(newRecord("created", "shop.Order", time.Now()))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := journal.NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.List(journal.Filter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemoryStore_CopiesInput(t *testing.T) {
	store := journal.NewMemoryStore()
	rec := newRecord("created", "shop.Order", time.Now())

	_, err := store.Append(rec)
	require.NoError(t, err)
	rec.Senders[0] = "changed"
	rec.Payload["currency"] = "USD"

	records, err := store.List(journal.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "sender", records[0].Senders[0])
	assert.Equal(t, "EUR", records[0].Payload["currency"])
}
