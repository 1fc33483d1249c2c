// Package strand runs tasks one at a time in submission order.
//
// Submitted tasks are buffered in an unbounded queue so a submitter never
// waits for the running task to finish.
package strand

import (
	"sync"

	"github.com/lightningnetwork/lnd/queue"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

const queueBuffer = 20

// Task is a unit of work executed on the strand.
type Task func()

type Strand struct {
	mu      sync.RWMutex
	stopped bool

	queue  *queue.ConcurrentQueue
	quit   chan struct{}
	wg     sync.WaitGroup
	logger *zap.Logger
}

// New starts the worker goroutine.
func New(logger *zap.Logger) *Strand {
	s := &Strand{
		queue:  queue.NewConcurrentQueue(queueBuffer),
		quit:   make(chan struct{}),
		logger: logger,
	}
	s.queue.Start()
	s.wg.Add(1)
	go s.run()
	return s
}

// Submit enqueues task. It fails with model.ErrServiceStopped after Stop.
func (s *Strand) Submit(task Task) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		return model.ErrServiceStopped
	}
	s.queue.ChanIn() <- task
	return nil
}

// Stop rejects further submissions, waits for every task submitted before
// it and stops the worker. It must not be called from a task.
func (s *Strand) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	drained := make(chan struct{})
	s.queue.ChanIn() <- Task(func() { close(drained) })
	s.mu.Unlock()

	<-drained
	close(s.quit)
	s.wg.Wait()
	s.queue.Stop()
}

func (s *Strand) run() {
	defer s.wg.Done()
	for {
		select {
		case item := <-s.queue.ChanOut():
			s.execute(item.(Task))
		case <-s.quit:
			return
		}
	}
}

func (s *Strand) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("strand task panicked", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()
	task()
}
