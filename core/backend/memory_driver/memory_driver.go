package memory_driver

import (
	"bytes"
	"sync"

	"github.com/pkg/errors"
	"github.com/tidwall/btree"

	"github.com/meverselabs/boosto/core/backend"
)

const btreeDegrees = 64

func init() {
	backend.RegisterDriver("memory", NewStoreBackendMemory)
}

type memItem struct {
	key   []byte
	value []byte
}

func (mi *memItem) Less(item btree.Item, ctx interface{}) bool {
	return bytes.Compare(mi.key, item.(*memItem).key) < 0
}

// StoreBackendMemory keeps the whole store in an ordered tree. The path is ignored
type StoreBackendMemory struct {
	sync.RWMutex
	keys   *btree.BTree
	closed bool
}

func NewStoreBackendMemory(path string) (backend.StoreBackend, error) {
	back := &StoreBackendMemory{
		keys: btree.New(btreeDegrees, nil),
	}
	return back, nil
}

func (st *StoreBackendMemory) Shrink() {
}

func (st *StoreBackendMemory) Close() {
	st.Lock()
	defer st.Unlock()

	st.closed = true
	st.keys = btree.New(btreeDegrees, nil)
}

func (st *StoreBackendMemory) View(fn func(txn backend.StoreReader) error) error {
	st.RLock()
	defer st.RUnlock()

	if st.closed {
		return errors.WithStack(backend.ErrStoreClosed)
	}
	return fn(&storeBackendMemoryTx{st: st})
}

func (st *StoreBackendMemory) Update(fn func(txn backend.StoreWriter) error) error {
	st.Lock()
	defer st.Unlock()

	if st.closed {
		return errors.WithStack(backend.ErrStoreClosed)
	}
	txn := &storeBackendMemoryTx{st: st, writable: true}
	if err := fn(txn); err != nil {
		txn.rollback()
		return err
	}
	return nil
}

type undoEntry struct {
	key  []byte
	prev *memItem
}

type storeBackendMemoryTx struct {
	st       *StoreBackendMemory
	writable bool
	undo     []undoEntry
}

func (r *storeBackendMemoryTx) Get(key []byte) ([]byte, error) {
	item := r.st.keys.Get(&memItem{key: key})
	if item == nil {
		return nil, backend.ErrNotExistKey
	}
	value := item.(*memItem).value
	return append([]byte{}, value...), nil
}

func (r *storeBackendMemoryTx) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	var inErr error
	r.st.keys.AscendGreaterOrEqual(&memItem{key: prefix}, func(item btree.Item) bool {
		mi := item.(*memItem)
		if !bytes.HasPrefix(mi.key, prefix) {
			return false
		}
		if err := fn(mi.key, mi.value); err != nil {
			inErr = err
			return false
		}
		return true
	})
	return inErr
}

func (r *storeBackendMemoryTx) Set(key []byte, value []byte) error {
	item := &memItem{
		key:   append([]byte{}, key...),
		value: append([]byte{}, value...),
	}
	prev := r.st.keys.ReplaceOrInsert(item)
	r.record(item.key, prev)
	return nil
}

func (r *storeBackendMemoryTx) Delete(key []byte) error {
	prev := r.st.keys.Delete(&memItem{key: key})
	if prev != nil {
		r.record(prev.(*memItem).key, prev)
	}
	return nil
}

func (r *storeBackendMemoryTx) record(key []byte, prev btree.Item) {
	ue := undoEntry{key: key}
	if prev != nil {
		ue.prev = prev.(*memItem)
	}
	r.undo = append(r.undo, ue)
}

func (r *storeBackendMemoryTx) rollback() {
	for i := len(r.undo) - 1; i >= 0; i-- {
		ue := r.undo[i]
		if ue.prev != nil {
			r.st.keys.ReplaceOrInsert(ue.prev)
		} else {
			r.st.keys.Delete(&memItem{key: ue.key})
		}
	}
	r.undo = nil
}
