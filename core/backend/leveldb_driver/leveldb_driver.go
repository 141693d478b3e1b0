package leveldb_driver

import (
	"time"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/meverselabs/boosto/common/rlog"
	"github.com/meverselabs/boosto/core/backend"
)

func init() {
	backend.RegisterDriver("leveldb", NewStoreBackendLevelDB)
}

type StoreBackendLevelDB struct {
	db *leveldb.DB
}

func NewStoreBackendLevelDB(path string) (backend.StoreBackend, error) {
	start := time.Now()
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	rlog.Debugf("LevelDB is opened in %v", time.Now().Sub(start))
	back := &StoreBackendLevelDB{
		db: db,
	}
	return back, nil
}

func (st *StoreBackendLevelDB) Shrink() {
	if err := st.db.CompactRange(util.Range{}); err != nil {
		rlog.Warnf("LevelDB compaction failed: %v", err)
	}
}

func (st *StoreBackendLevelDB) Close() {
	start := time.Now()
	st.db.Close()
	rlog.Debugf("LevelDB is closed in %v", time.Now().Sub(start))
}

func (st *StoreBackendLevelDB) View(fn func(txn backend.StoreReader) error) error {
	sn, err := st.db.GetSnapshot()
	if err != nil {
		return convertErr(err)
	}
	defer sn.Release()
	return fn(&storeBackendLevelDBTx{rd: sn})
}

func (st *StoreBackendLevelDB) Update(fn func(txn backend.StoreWriter) error) error {
	txn, err := st.db.OpenTransaction()
	if err != nil {
		return convertErr(err)
	}
	r := &storeBackendLevelDBTx{
		rd:  txn,
		txn: txn,
	}
	if err := fn(r); err != nil {
		txn.Discard()
		return err
	}
	if err := txn.Commit(); err != nil {
		txn.Discard()
		return errors.WithStack(err)
	}
	return nil
}

func convertErr(err error) error {
	if err == leveldb.ErrClosed {
		return errors.WithStack(backend.ErrStoreClosed)
	}
	return errors.WithStack(err)
}

// levelReader is implemented by both the snapshot and the transaction
type levelReader interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

type storeBackendLevelDBTx struct {
	rd  levelReader
	txn *leveldb.Transaction
}

func (r *storeBackendLevelDBTx) Get(key []byte) ([]byte, error) {
	value, err := r.rd.Get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, backend.ErrNotExistKey
		} else {
			return nil, errors.WithStack(err)
		}
	}
	return value, nil
}

func (r *storeBackendLevelDBTx) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	var rg *util.Range
	if len(prefix) > 0 {
		rg = util.BytesPrefix(prefix)
	}
	it := r.rd.NewIterator(rg, nil)
	defer it.Release()
	for it.Next() {
		if err := fn(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return errors.WithStack(it.Error())
}

func (r *storeBackendLevelDBTx) Set(key []byte, value []byte) error {
	if err := r.txn.Put(key, value, nil); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (r *storeBackendLevelDBTx) Delete(key []byte) error {
	if err := r.txn.Delete(key, nil); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
