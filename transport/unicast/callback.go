package unicast

import (
	"sync"

	"github.com/codebot/zenoh/wire"
)

// Callback is the upper layer's handler for a fully reassembled or
// already-whole application message.
type Callback func(msg wire.ZenohMessage) error

// callbackSlot is the shared, reader-writer protected callback handle of
// spec §5: readers clone the handle out under the shared lock and invoke
// it with no lock held, so a slow or blocking callback never stalls a
// concurrent Set or another lane's delivery.
type callbackSlot struct {
	mu sync.RWMutex
	cb Callback
}

func (s *callbackSlot) set(cb Callback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cb = cb
}

func (s *callbackSlot) get() Callback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cb
}
