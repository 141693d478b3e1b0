package backend_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meverselabs/boosto/core/backend"
	_ "github.com/meverselabs/boosto/core/backend/bolt_driver"
	_ "github.com/meverselabs/boosto/core/backend/leveldb_driver"
	_ "github.com/meverselabs/boosto/core/backend/memory_driver"
)

var errAbort = errors.New("abort")

func openAll(t *testing.T) map[string]backend.StoreBackend {
	dir := t.TempDir()
	stores := map[string]backend.StoreBackend{}
	for _, name := range []string{"memory", "leveldb", "bolt"} {
		st, err := backend.Create(name, filepath.Join(dir, name, "data"))
		require.NoError(t, err, name)
		t.Cleanup(st.Close)
		stores[name] = st
	}
	return stores
}

func TestDrivers(t *testing.T) {
	assert.Equal(t, []string{"bolt", "leveldb", "memory"}, backend.Drivers())

	_, err := backend.Create("badger", t.TempDir())
	assert.True(t, errors.Is(err, backend.ErrNotExistDriver))
}

func TestSetGetIterate(t *testing.T) {
	for name, st := range openAll(t) {
		require.NoError(t, st.Update(func(txn backend.StoreWriter) error {
			for _, k := range []string{"b2", "a1", "b1", "c1", "b3"} {
				if err := txn.Set([]byte(k), []byte("v"+k)); err != nil {
					return err
				}
			}
			return txn.Delete([]byte("b3"))
		}), name)

		require.NoError(t, st.View(func(txn backend.StoreReader) error {
			v, err := txn.Get([]byte("a1"))
			require.NoError(t, err)
			assert.Equal(t, []byte("va1"), v, name)

			_, err = txn.Get([]byte("b3"))
			assert.Equal(t, backend.ErrNotExistKey, err, name)

			var keys []string
			require.NoError(t, txn.Iterate([]byte("b"), func(key []byte, value []byte) error {
				keys = append(keys, string(key))
				return nil
			}))
			assert.Equal(t, []string{"b1", "b2"}, keys, name)
			return nil
		}), name)
	}
}

func TestUpdateRollback(t *testing.T) {
	for name, st := range openAll(t) {
		require.NoError(t, st.Update(func(txn backend.StoreWriter) error {
			return txn.Set([]byte("k"), []byte("before"))
		}))

		err := st.Update(func(txn backend.StoreWriter) error {
			if err := txn.Set([]byte("k"), []byte("after")); err != nil {
				return err
			}
			if err := txn.Set([]byte("n"), []byte("new")); err != nil {
				return err
			}
			return errAbort
		})
		assert.Equal(t, errAbort, err, name)

		require.NoError(t, st.View(func(txn backend.StoreReader) error {
			v, err := txn.Get([]byte("k"))
			require.NoError(t, err)
			assert.Equal(t, []byte("before"), v, name)
			_, err = txn.Get([]byte("n"))
			assert.Equal(t, backend.ErrNotExistKey, err, name)
			return nil
		}))
	}
}

func TestReopen(t *testing.T) {
	for _, name := range []string{"leveldb", "bolt"} {
		path := filepath.Join(t.TempDir(), name)
		st, err := backend.Create(name, path)
		require.NoError(t, err)
		require.NoError(t, st.Update(func(txn backend.StoreWriter) error {
			return txn.Set([]byte("persist"), []byte{1, 2, 3})
		}))
		st.Close()

		st, err = backend.Create(name, path)
		require.NoError(t, err)
		require.NoError(t, st.View(func(txn backend.StoreReader) error {
			v, err := txn.Get([]byte("persist"))
			require.NoError(t, err)
			assert.Equal(t, []byte{1, 2, 3}, v, name)
			return nil
		}))
		st.Close()
	}
}
