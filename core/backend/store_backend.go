package backend

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// StoreBackend is a key/value store that applies a batch of writes atomically
type StoreBackend interface {
	Shrink()
	Close()
	View(fn func(txn StoreReader) error) error
	Update(fn func(txn StoreWriter) error) error
}

// StoreReader reads values by key. Get returns ErrNotExistKey for a missing key
type StoreReader interface {
	Get(key []byte) ([]byte, error)
	Iterate(prefix []byte, fn func(key []byte, value []byte) error) error
}

// StoreWriter modifies the store. Writes become visible to other transactions on commit
type StoreWriter interface {
	StoreReader
	Set(key []byte, value []byte) error
	Delete(key []byte) error
}

type CreateBackend func(Path string) (StoreBackend, error)

var (
	gDriverLock sync.Mutex
	gDriverMap  = map[string]CreateBackend{}
)

// RegisterDriver adds a driver that Create can open by name
func RegisterDriver(Name string, fn CreateBackend) {
	gDriverLock.Lock()
	defer gDriverLock.Unlock()

	gDriverMap[Name] = fn
}

// Create opens the store of the named driver at the path
func Create(Name string, Path string) (StoreBackend, error) {
	gDriverLock.Lock()
	fn, has := gDriverMap[Name]
	gDriverLock.Unlock()
	if !has {
		return nil, errors.Wrap(ErrNotExistDriver, Name)
	}
	return fn(Path)
}

// Drivers returns the registered driver names in order
func Drivers() []string {
	gDriverLock.Lock()
	defer gDriverLock.Unlock()

	names := make([]string, 0, len(gDriverMap))
	for name := range gDriverMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
