// Package notifier fans reorganization events out to subscribers.
package notifier

import (
	"sync"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// Handler receives reorganization events. Handlers run synchronously on the
// notifying goroutine and must not block.
type Handler func(model.ReorgEvent)

type Notifier struct {
	mu       sync.Mutex
	handlers []Handler
	stopped  bool
}

func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers handler. It fails with model.ErrServiceStopped once
// the notifier has been stopped.
func (n *Notifier) Subscribe(handler Handler) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return model.ErrServiceStopped
	}
	n.handlers = append(n.handlers, handler)
	return nil
}

// Notify delivers event to every subscriber in registration order. It is a
// no-op after Stop.
func (n *Notifier) Notify(event model.ReorgEvent) {
	for _, handler := range n.snapshot() {
		handler(event)
	}
}

// Stop delivers a final service-stopped event to each subscriber and clears
// the registry. Only the first call has an effect.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return
	}
	n.stopped = true
	handlers := n.handlers
	n.handlers = nil
	n.mu.Unlock()

	event := model.ReorgEvent{Err: model.ErrServiceStopped}
	for _, handler := range handlers {
		handler(event)
	}
}

// Len returns the number of subscribers.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.handlers)
}

func (n *Notifier) snapshot() []Handler {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return nil
	}
	return append([]Handler(nil), n.handlers...)
}
