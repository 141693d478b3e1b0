package types

import (
	"github.com/bluele/gcache"
)

// ContextCacheSize is the number of loaded values kept by a context
const ContextCacheSize = 8192

type contextCache struct {
	loader Loader
	values gcache.Cache
}

func newContextCache(loader Loader) *contextCache {
	return &contextCache{
		loader: loader,
		values: gcache.New(ContextCacheSize).LRU().Build(),
	}
}

// Data returns the loaded value and keeps it for the next read
func (cc *contextCache) Data(key []byte) []byte {
	skey := string(key)
	if v, err := cc.values.Get(skey); err == nil {
		return v.([]byte)
	}
	value := cc.loader.Data(key)
	cc.values.Set(skey, value)
	return value
}

// remove forgets the value so the next read comes from the loader
func (cc *contextCache) remove(key []byte) {
	cc.values.Remove(string(key))
}
