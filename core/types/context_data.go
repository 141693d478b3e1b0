package types

import (
	"bytes"
	"encoding/hex"

	"github.com/tidwall/btree"

	"github.com/meverselabs/boosto/common/hash"
)

const btreeDegrees = 16

type dataItem struct {
	key     []byte
	value   []byte
	deleted bool
}

// Less orders the items by the key
func (di *dataItem) Less(item btree.Item, ctx interface{}) bool {
	return bytes.Compare(di.key, item.(*dataItem).key) < 0
}

// ContextData is a state data of the context
type ContextData struct {
	cache  *contextCache
	Parent *ContextData
	items  *btree.BTree
	Events []*Event
	isTop  bool
}

// NewContextData returns a ContextData
func NewContextData(cache *contextCache, Parent *ContextData) *ContextData {
	ctd := &ContextData{
		cache:  cache,
		Parent: Parent,
		items:  btree.New(btreeDegrees, nil),
		Events: []*Event{},
		isTop:  true,
	}
	return ctd
}

// Data returns the data of the key from the nearest snapshot that has it
func (ctd *ContextData) Data(key []byte) []byte {
	if item := ctd.items.Get(&dataItem{key: key}); item != nil {
		di := item.(*dataItem)
		if di.deleted {
			return nil
		}
		return di.value
	}
	var value []byte
	if ctd.Parent != nil {
		value = ctd.Parent.Data(key)
	} else {
		value = ctd.cache.Data(key)
	}
	if len(value) == 0 {
		return nil
	}
	if ctd.isTop {
		nvalue := make([]byte, len(value))
		copy(nvalue, value)
		return nvalue
	}
	return value
}

// SetData inserts the data to the snapshot. An empty value deletes the key
func (ctd *ContextData) SetData(key []byte, value []byte) {
	di := &dataItem{
		key: append([]byte{}, key...),
	}
	if len(value) == 0 {
		di.deleted = true
	} else {
		di.value = append([]byte{}, value...)
	}
	ctd.items.ReplaceOrInsert(di)
}

// EmitEvent appends the event to the snapshot
func (ctd *ContextData) EmitEvent(e *Event) {
	ctd.Events = append(ctd.Events, e)
}

// Len returns the number of keys modified in the snapshot
func (ctd *ContextData) Len() int {
	return ctd.items.Len()
}

// EachModified calls fn for every modified key in key order. value is nil for a deleted key
func (ctd *ContextData) EachModified(fn func(key []byte, value []byte, deleted bool) error) error {
	var inErr error
	ctd.items.Ascend(func(item btree.Item) bool {
		di := item.(*dataItem)
		if err := fn(di.key, di.value, di.deleted); err != nil {
			inErr = err
			return false
		}
		return true
	})
	return inErr
}

// merge applies the modifications and the events of the child
func (ctd *ContextData) merge(child *ContextData) {
	child.items.Ascend(func(item btree.Item) bool {
		ctd.items.ReplaceOrInsert(item)
		return true
	})
	ctd.Events = append(ctd.Events, child.Events...)
}

// Hash returns the hash of the modified keys of the snapshot
func (ctd *ContextData) Hash() hash.Hash256 {
	var buffer bytes.Buffer
	ctd.EachModified(func(key []byte, value []byte, deleted bool) error {
		buffer.Write(key)
		if deleted {
			buffer.WriteByte(0)
		} else {
			buffer.WriteByte(1)
			buffer.Write(value)
		}
		return nil
	})
	return hash.Hash(buffer.Bytes())
}

// Dump prints the modified keys of the context data
func (ctd *ContextData) Dump() string {
	var buffer bytes.Buffer
	buffer.WriteString("DataMap\n")
	ctd.EachModified(func(key []byte, value []byte, deleted bool) error {
		buffer.WriteString(hex.EncodeToString(key))
		buffer.WriteString(":")
		if deleted {
			buffer.WriteString("deleted")
		} else {
			buffer.WriteString(hex.EncodeToString(value))
		}
		buffer.WriteString("\n")
		return nil
	})
	return buffer.String()
}
