package bolt_driver

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common/rlog"
	"github.com/meverselabs/boosto/core/backend"
)

var bucketName = []byte{0}

func init() {
	backend.RegisterDriver("bolt", NewStoreBackendBolt)
}

type StoreBackendBolt struct {
	db *bolt.DB
}

// NewStoreBackendBolt opens the bolt file at the path, creating its directory when needed
func NewStoreBackendBolt(path string) (backend.StoreBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, errors.WithStack(err)
	}

	start := time.Now()
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := db.Update(func(txn *bolt.Tx) error {
		_, err := txn.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, errors.WithStack(err)
	}
	rlog.Debugf("Bolt is opened in %v", time.Now().Sub(start))
	back := &StoreBackendBolt{
		db: db,
	}
	return back, nil
}

func (st *StoreBackendBolt) Shrink() {
}

func (st *StoreBackendBolt) Close() {
	start := time.Now()
	st.db.Close()
	rlog.Debugf("Bolt is closed in %v", time.Now().Sub(start))
}

func (st *StoreBackendBolt) View(fn func(txn backend.StoreReader) error) error {
	return convertErr(st.db.View(func(txn *bolt.Tx) error {
		return fn(&storeBackendBoltTx{txn: txn})
	}))
}

func (st *StoreBackendBolt) Update(fn func(txn backend.StoreWriter) error) error {
	return convertErr(st.db.Update(func(txn *bolt.Tx) error {
		return fn(&storeBackendBoltTx{txn: txn})
	}))
}

func convertErr(err error) error {
	if err == bolt.ErrDatabaseNotOpen {
		return errors.WithStack(backend.ErrStoreClosed)
	}
	return err
}

type storeBackendBoltTx struct {
	txn *bolt.Tx
}

// Get copies the value because bolt memory is only valid inside the transaction
func (r *storeBackendBoltTx) Get(key []byte) ([]byte, error) {
	value := r.txn.Bucket(bucketName).Get(key)
	if value == nil {
		return nil, backend.ErrNotExistKey
	}
	return append([]byte{}, value...), nil
}

func (r *storeBackendBoltTx) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	c := r.txn.Bucket(bucketName).Cursor()
	for key, value := c.Seek(prefix); key != nil && bytes.HasPrefix(key, prefix); key, value = c.Next() {
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *storeBackendBoltTx) Set(key []byte, value []byte) error {
	if err := r.txn.Bucket(bucketName).Put(key, value); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (r *storeBackendBoltTx) Delete(key []byte) error {
	if err := r.txn.Bucket(bucketName).Delete(key); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
