package chain

import (
	"sync"
	"time"
)

// Clock provides the unix timestamp of a call
type Clock interface {
	Now() uint64
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// ManualClock only moves when it is told to
type ManualClock struct {
	sync.Mutex
	now uint64
}

func NewManualClock(now uint64) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Now() uint64 {
	c.Lock()
	defer c.Unlock()
	return c.now
}

func (c *ManualClock) Set(now uint64) {
	c.Lock()
	defer c.Unlock()
	c.now = now
}

// Add moves the clock forward by whole seconds of the duration
func (c *ManualClock) Add(d time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.now += uint64(d / time.Second)
}
