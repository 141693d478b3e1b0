package chain

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common/bin"
	"github.com/meverselabs/boosto/common/hash"
	"github.com/meverselabs/boosto/core/backend"
	"github.com/meverselabs/boosto/core/types"
)

// Store saves the committed state and the receipts
// All updates of a call are executed in one transaction of the backend
type Store struct {
	closeLock sync.RWMutex
	db        backend.StoreBackend
	isClose   bool
}

// NewStore returns a Store
func NewStore(db backend.StoreBackend) *Store {
	return &Store{
		db: db,
	}
}

// Close terminate and clean store
func (st *Store) Close() {
	st.closeLock.Lock()
	defer st.closeLock.Unlock()

	if st.isClose {
		return
	}
	st.isClose = true
	st.db.Shrink()
	st.db.Close()
}

// Data returns the committed data of the key
func (st *Store) Data(key []byte) []byte {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil
	}

	var data []byte
	if err := st.db.View(func(txn backend.StoreReader) error {
		value, err := txn.Get(key)
		if err != nil {
			return err
		}
		data = make([]byte, len(value))
		copy(data, value)
		return nil
	}); err != nil {
		return nil
	}
	return data
}

// IsInitialized returns the genesis state is stored or not
func (st *Store) IsInitialized() bool {
	return len(st.Data(tagInitialized)) > 0
}

// Nonce returns the number of the stored receipts
func (st *Store) Nonce() uint64 {
	return bin.Uint64(st.Data(tagNonce))
}

// Receipt returns the receipt of the hash
func (st *Store) Receipt(h hash.Hash256) (*types.Receipt, error) {
	bs := st.Data(toReceiptKey(h))
	if len(bs) == 0 {
		return nil, errors.WithStack(ErrNotExistReceipt)
	}
	r := &types.Receipt{}
	if err := json.Unmarshal(bs, r); err != nil {
		return nil, errors.WithStack(err)
	}
	return r, nil
}

// StoreGenesis applies the genesis context data and marks the store initialized
func (st *Store) StoreGenesis(ctd *types.ContextData) error {
	return st.update(func(txn backend.StoreWriter) error {
		if err := applyContextData(txn, ctd); err != nil {
			return err
		}
		return txn.Set(tagInitialized, []byte{1})
	})
}

// StoreCall applies the context data of a call with its receipt. ctd is nil for a failed call
func (st *Store) StoreCall(ctd *types.ContextData, r *types.Receipt, nonce uint64) error {
	bs, err := json.Marshal(r)
	if err != nil {
		return errors.WithStack(err)
	}
	return st.update(func(txn backend.StoreWriter) error {
		if ctd != nil {
			if err := applyContextData(txn, ctd); err != nil {
				return err
			}
		}
		if err := txn.Set(toReceiptKey(r.TxHash), bs); err != nil {
			return err
		}
		return txn.Set(tagNonce, bin.Uint64Bytes(nonce))
	})
}

func (st *Store) update(fn func(txn backend.StoreWriter) error) error {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return errors.WithStack(backend.ErrStoreClosed)
	}
	return st.db.Update(fn)
}

func applyContextData(txn backend.StoreWriter, ctd *types.ContextData) error {
	return ctd.EachModified(func(key []byte, value []byte, deleted bool) error {
		if deleted {
			return txn.Delete(key)
		}
		return txn.Set(key, value)
	})
}
