package chain

import (
	"sync"

	"github.com/bluele/gcache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/bin"
	"github.com/meverselabs/boosto/common/hash"
	"github.com/meverselabs/boosto/common/rlog"
	"github.com/meverselabs/boosto/core/types"
)

// DefaultReceiptCacheSize is used when the cache size is not given
const DefaultReceiptCacheSize = 1024

// CallFunc runs a call against the contract inside the snapshot of the call
type CallFunc func(cc *types.ContractContext, cont types.Contract) error

// Chain serializes calls to the contracts and keeps the state in the store
type Chain struct {
	sync.Mutex
	isInit   bool
	isClose  bool
	store    *Store
	ctx      *types.Context
	clock    Clock
	nonce    uint64
	receipts gcache.Cache
	subLock  sync.Mutex
	subs     map[uint64]chan *types.Event
	subSeq   uint64
}

// NewChain returns a Chain
func NewChain(store *Store, clock Clock, ReceiptCacheSize int) *Chain {
	if clock == nil {
		clock = SystemClock{}
	}
	if ReceiptCacheSize <= 0 {
		ReceiptCacheSize = DefaultReceiptCacheSize
	}
	cn := &Chain{
		store: store,
		ctx:   types.NewContext(store),
		clock: clock,
		subs:  map[uint64]chan *types.Event{},
	}
	cn.receipts = gcache.New(ReceiptCacheSize).LRU().LoaderFunc(func(key interface{}) (interface{}, error) {
		return cn.store.Receipt(key.(hash.Hash256))
	}).Build()
	return cn
}

// Init initializes the chain. genesis only runs when the store is empty
func (cn *Chain) Init(genesis func(ctx *types.Context) error) error {
	cn.Lock()
	defer cn.Unlock()

	if cn.isInit {
		return errors.WithStack(ErrAlreadyInitialized)
	}
	if !cn.store.IsInitialized() {
		cn.ctx.SetTimestamp(cn.clock.Now())
		sn := cn.ctx.Snapshot()
		if err := genesis(cn.ctx); err != nil {
			cn.ctx.Revert(sn)
			return err
		}
		if err := cn.store.StoreGenesis(cn.ctx.Top()); err != nil {
			cn.ctx.Revert(sn)
			return err
		}
		cn.ctx.TakeEvents()
		rlog.Infof("Genesis stored %v", cn.ctx.Hash().String())
		cn.ctx.Flush(sn)
	}
	cn.nonce = cn.store.Nonce()
	cn.isInit = true
	return nil
}

// Close stops the chain and the store
func (cn *Chain) Close() {
	cn.Lock()
	defer cn.Unlock()

	if cn.isClose {
		return
	}
	cn.isClose = true
	cn.store.Close()

	cn.subLock.Lock()
	defer cn.subLock.Unlock()
	for id, ch := range cn.subs {
		close(ch)
		delete(cn.subs, id)
	}
}

func (cn *Chain) checkReady() error {
	if cn.isClose {
		return errors.WithStack(ErrChainClosed)
	}
	if !cn.isInit {
		return errors.WithStack(ErrNotInitialized)
	}
	return nil
}

// Execute runs the call of the address to the contract with the attached native value.
// Every effect of a failed call is discarded and the error is recorded in the receipt
func (cn *Chain) Execute(from common.Address, to common.Address, method string, value *amount.Amount, fn CallFunc) (*types.Receipt, error) {
	cn.Lock()
	defer cn.Unlock()

	if err := cn.checkReady(); err != nil {
		return nil, err
	}
	if value == nil {
		value = amount.NewAmount(0, 0)
	}

	Timestamp := cn.clock.Now()
	cn.ctx.SetTimestamp(Timestamp)
	cn.nonce++
	r := &types.Receipt{
		TxHash:    hash.Hash(from[:], to[:], []byte(method), value.Bytes(), bin.Uint64Bytes(Timestamp), bin.Uint64Bytes(cn.nonce)),
		From:      from,
		To:        to,
		Method:    method,
		Value:     value,
		Timestamp: Timestamp,
		Events:    []*types.Event{},
	}

	sn := cn.ctx.Snapshot()
	if err := cn.runCall(from, to, value, fn); err != nil {
		cn.ctx.Revert(sn)
		cn.fail(r, err)
		return r, err
	}

	r.Success = true
	r.ChangeHash = cn.ctx.Hash()
	for i, e := range cn.ctx.TakeEvents() {
		e.Index = uint16(i)
		r.Events = append(r.Events, e)
	}
	if err := cn.store.StoreCall(cn.ctx.Top(), r, cn.nonce); err != nil {
		cn.ctx.Revert(sn)
		r.Success = false
		r.ChangeHash = hash.Hash256{}
		r.Events = []*types.Event{}
		cn.fail(r, err)
		return r, err
	}
	cn.ctx.Flush(sn)

	rlog.WithFields(logrus.Fields{
		"tx":     r.TxHash.String(),
		"from":   from.String(),
		"method": method,
		"events": len(r.Events),
	}).Debug("call committed")

	cn.receipts.Set(r.TxHash, r)
	cn.publish(r.Events)
	return r, nil
}

func (cn *Chain) runCall(from common.Address, to common.Address, value *amount.Amount, fn CallFunc) error {
	cont, err := cn.ctx.Contract(to)
	if err != nil {
		return err
	}
	if value.IsPlus() {
		if err := cn.ctx.TransferNative(from, to, value); err != nil {
			return err
		}
	}
	cc := types.NewContractContext(cn.ctx, to, from, value)
	return fn(cc, cont)
}

// fail records the receipt of the failed call. The call error is returned to the caller even if this fails
func (cn *Chain) fail(r *types.Receipt, err error) {
	r.Error = errors.Cause(err).Error()
	if serr := cn.store.StoreCall(nil, r, cn.nonce); serr != nil {
		rlog.Errorf("failed to store the receipt %v: %+v", r.TxHash.String(), serr)
	} else {
		cn.receipts.Set(r.TxHash, r)
	}
	rlog.WithFields(logrus.Fields{
		"tx":     r.TxHash.String(),
		"from":   r.From.String(),
		"method": r.Method,
		"error":  r.Error,
	}).Debug("call reverted")
}

// View runs a read only call against the contract at the current time. Every change is discarded
func (cn *Chain) View(to common.Address, fn CallFunc) error {
	cn.Lock()
	defer cn.Unlock()

	if err := cn.checkReady(); err != nil {
		return err
	}
	cn.ctx.SetTimestamp(cn.clock.Now())
	sn := cn.ctx.Snapshot()
	defer cn.ctx.Revert(sn)

	cont, err := cn.ctx.Contract(to)
	if err != nil {
		return err
	}
	return fn(types.NewContractContext(cn.ctx, to, common.Address{}, nil), cont)
}

// Call executes the method of the contract front with the inputs
func (cn *Chain) Call(from common.Address, to common.Address, method string, value *amount.Amount, inputs []interface{}) (*types.Receipt, []interface{}, error) {
	var result []interface{}
	r, err := cn.Execute(from, to, method, value, func(cc *types.ContractContext, cont types.Contract) error {
		res, err := types.ExecuteFront(cc, cont, method, inputs)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return r, nil, err
	}
	return r, result, nil
}

// ViewCall runs the method of the contract front and discards the changes
func (cn *Chain) ViewCall(to common.Address, method string, inputs []interface{}) ([]interface{}, error) {
	var result []interface{}
	if err := cn.View(to, func(cc *types.ContractContext, cont types.Contract) error {
		res, err := types.ExecuteFront(cc, cont, method, inputs)
		if err != nil {
			return err
		}
		result = res
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// Receipt returns the receipt of the call
func (cn *Chain) Receipt(TxHash hash.Hash256) (*types.Receipt, error) {
	v, err := cn.receipts.Get(TxHash)
	if err != nil {
		return nil, err
	}
	return v.(*types.Receipt), nil
}

// NativeBalance returns the committed native currency balance of the address
func (cn *Chain) NativeBalance(addr common.Address) (*amount.Amount, error) {
	cn.Lock()
	defer cn.Unlock()

	if err := cn.checkReady(); err != nil {
		return nil, err
	}
	return cn.ctx.NativeBalance(addr), nil
}

// Timestamp returns the current time of the chain clock
func (cn *Chain) Timestamp() uint64 {
	return cn.clock.Now()
}

// Subscribe returns a channel of the committed events and the function that ends the subscription
func (cn *Chain) Subscribe(size int) (<-chan *types.Event, func()) {
	cn.subLock.Lock()
	defer cn.subLock.Unlock()

	cn.subSeq++
	id := cn.subSeq
	ch := make(chan *types.Event, size)
	cn.subs[id] = ch
	return ch, func() {
		cn.subLock.Lock()
		defer cn.subLock.Unlock()
		if ch, has := cn.subs[id]; has {
			close(ch)
			delete(cn.subs, id)
		}
	}
}

func (cn *Chain) publish(events []*types.Event) {
	cn.subLock.Lock()
	defer cn.subLock.Unlock()

	for id, ch := range cn.subs {
		for _, e := range events {
			select {
			case ch <- e:
			default:
				rlog.Warnf("event subscriber %v is full, event %v dropped", id, e.Type)
			}
		}
	}
}
