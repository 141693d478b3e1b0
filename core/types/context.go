package types

import (
	"bytes"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/bin"
	"github.com/meverselabs/boosto/common/hash"
)

// Context is an intermediate in-memory state using the context data stack between calls
type Context struct {
	loader       Loader
	timestamp    uint64
	cache        *contextCache
	stack        []*ContextData
	isLatestHash bool
	dataHash     hash.Hash256
}

// NewContext returns a Context
func NewContext(loader Loader) *Context {
	ctx := &Context{
		loader: loader,
	}
	ctx.cache = newContextCache(loader)
	ctx.stack = []*ContextData{NewContextData(ctx.cache, nil)}
	return ctx
}

// NewEmptyContext returns a EmptyContext
func NewEmptyContext() *Context {
	return NewContext(newEmptyLoader())
}

// Timestamp returns the timestamp of the current call
func (ctx *Context) Timestamp() uint64 {
	return ctx.timestamp
}

// SetTimestamp sets the timestamp of the next call
func (ctx *Context) SetTimestamp(Timestamp uint64) {
	ctx.timestamp = Timestamp
}

// Hash returns the hash of the modifications of the top snapshot
func (ctx *Context) Hash() hash.Hash256 {
	if !ctx.isLatestHash {
		ctx.dataHash = ctx.Top().Hash()
		ctx.isLatestHash = true
	}
	return ctx.dataHash
}

// Top returns the top snapshot
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// Data returns the data from the top snapshot
func (ctx *Context) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return ctx.Top().Data(toDataKey(cont, addr, name))
}

// SetData inserts the data to the top snapshot
func (ctx *Context) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	ctx.isLatestHash = false
	ctx.Top().SetData(toDataKey(cont, addr, name), value)
}

// NativeBalance returns the native currency balance of the address
func (ctx *Context) NativeBalance(addr common.Address) *amount.Amount {
	bs := ctx.Top().Data(toNativeKey(addr))
	return amount.NewAmountFromBytes(bs)
}

func (ctx *Context) setNativeBalance(addr common.Address, am *amount.Amount) {
	ctx.isLatestHash = false
	if am.IsZero() {
		ctx.Top().SetData(toNativeKey(addr), nil)
	} else {
		ctx.Top().SetData(toNativeKey(addr), am.Bytes())
	}
}

// AddNativeBalance credits the address
func (ctx *Context) AddNativeBalance(addr common.Address, am *amount.Amount) error {
	if am.IsMinus() {
		return errors.WithStack(ErrInvalidNativeAmount)
	}
	ctx.setNativeBalance(addr, ctx.NativeBalance(addr).Add(am))
	return nil
}

// SubNativeBalance debits the address
func (ctx *Context) SubNativeBalance(addr common.Address, am *amount.Amount) error {
	if am.IsMinus() {
		return errors.WithStack(ErrInvalidNativeAmount)
	}
	bal := ctx.NativeBalance(addr)
	if bal.Less(am) {
		return errors.WithStack(ErrInsufficientNativeBalance)
	}
	ctx.setNativeBalance(addr, bal.Sub(am))
	return nil
}

// TransferNative moves the native currency between addresses
func (ctx *Context) TransferNative(from common.Address, to common.Address, am *amount.Amount) error {
	if err := ctx.SubNativeBalance(from, am); err != nil {
		return err
	}
	if err := ctx.AddNativeBalance(to, am); err != nil {
		return err
	}
	return nil
}

// IsContract returns the contract is deployed to the address or not
func (ctx *Context) IsContract(addr common.Address) bool {
	return len(ctx.Top().Data(toContractKey(addr))) > 0
}

// Contract returns the contract deployed to the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	bs := ctx.Top().Data(toContractKey(addr))
	if len(bs) == 0 {
		return nil, errors.WithStack(ErrNotExistContract)
	}
	cd := &ContractDefine{}
	if _, err := bin.ReadFromBytes(cd, bs); err != nil {
		return nil, err
	}
	return CreateContract(cd)
}

// DeployContract creates the contract of the class and calls its OnCreate as the owner
func (ctx *Context) DeployContract(owner common.Address, ClassID uint64, nonce uint64, Args []byte) (Contract, error) {
	if !IsValidClassID(ClassID) {
		return nil, errors.WithStack(ErrInvalidClassID)
	}
	addr := ContractAddress(owner, ClassID, nonce)
	if ctx.IsContract(addr) {
		return nil, errors.WithStack(ErrExistContract)
	}
	cd := &ContractDefine{
		Address: addr,
		Owner:   owner,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	bs, _, err := bin.WriterToBytes(cd)
	if err != nil {
		return nil, err
	}
	ctx.isLatestHash = false
	ctx.Top().SetData(toContractKey(addr), bs)
	if err := cont.OnCreate(NewContractContext(ctx, addr, owner, nil), Args); err != nil {
		return nil, err
	}
	return cont, nil
}

// EmitEvent creates the event to the top snapshot
func (ctx *Context) EmitEvent(e *Event) {
	ctx.Top().EmitEvent(e)
}

// TakeEvents returns the events of the top snapshot and clears them
func (ctx *Context) TakeEvents() []*Event {
	top := ctx.Top()
	events := top.Events
	top.Events = []*Event{}
	return events
}

// Snapshot push a snapshot and returns the snapshot number of it
func (ctx *Context) Snapshot() int {
	ctx.isLatestHash = false
	ctd := NewContextData(ctx.cache, ctx.Top())
	ctx.stack[len(ctx.stack)-1].isTop = false
	ctx.stack = append(ctx.stack, ctd)
	return len(ctx.stack)
}

// Revert removes snapshots after the snapshot number
func (ctx *Context) Revert(sn int) {
	ctx.isLatestHash = false
	if len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
	ctx.stack[len(ctx.stack)-1].isTop = true
}

// Commit apply snapshots to the top after the snapshot number
func (ctx *Context) Commit(sn int) {
	ctx.isLatestHash = false
	for len(ctx.stack) >= sn && len(ctx.stack) > 1 {
		ctd := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		ctx.Top().merge(ctd)
	}
	ctx.stack[len(ctx.stack)-1].isTop = true
}

// Flush removes snapshots after the snapshot number once their modifications are stored by the loader.
// The cached values of the modified keys are dropped so the next read comes from the loader
func (ctx *Context) Flush(sn int) {
	for i := sn - 1; i >= 0 && i < len(ctx.stack); i++ {
		ctx.stack[i].EachModified(func(key []byte, value []byte, deleted bool) error {
			ctx.cache.remove(key)
			return nil
		})
	}
	ctx.Revert(sn)
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}

// Dump prints the top context data and its events
func (ctx *Context) Dump() string {
	var buffer bytes.Buffer
	buffer.WriteString(ctx.Top().Dump())
	buffer.WriteString("Events\n")
	buffer.WriteString(spew.Sdump(ctx.Top().Events))
	return buffer.String()
}
