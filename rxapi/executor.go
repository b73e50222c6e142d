package rxapi

import (
	"context"
	"sync"
)

// Executor runs fn at some point, in the order calls were made.
type Executor interface {
	Execute(fn func())
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(fn func())

func (f ExecutorFunc) Execute(fn func()) { f(fn) }

// Immediate runs work on the calling goroutine.
var Immediate Executor = ExecutorFunc(func(fn func()) { fn() })

// SerialQueue runs submitted work one item at a time on a single
// goroutine. Use it where downstream code expects a single owning thread,
// such as UI state.
type SerialQueue struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	signal chan struct{}
	done   chan struct{}
}

// NewSerialQueue starts the queue's goroutine. Call Close to stop it.
func NewSerialQueue() *SerialQueue {
	q := &SerialQueue{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go q.loop()
	return q
}

// Execute enqueues fn. Work submitted after Close is dropped.
func (q *SerialQueue) Execute(fn func()) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.queue = append(q.queue, fn)
	q.mu.Unlock()
	q.notify()
}

// Close stops accepting work, drains what is queued and waits for the
// goroutine to exit, or for ctx to be done.
func (q *SerialQueue) Close(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.notify()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *SerialQueue) notify() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *SerialQueue) loop() {
	defer close(q.done)
	for range q.signal {
		for {
			q.mu.Lock()
			if len(q.queue) == 0 {
				closed := q.closed
				q.mu.Unlock()
				if closed {
					return
				}
				break
			}
			fn := q.queue[0]
			q.queue[0] = nil
			q.queue = q.queue[1:]
			q.mu.Unlock()

			fn()
		}
	}
}

// ReceiveOn delivers the value and terminal events of p through e.
// OnSubscribe stays on the subscribing goroutine. Work already queued on e
// when the subscriber cancels is discarded.
func ReceiveOn(p Publisher, e Executor) Publisher {
	return PublisherFunc(func(ctx context.Context, s Subscriber) {
		p.Subscribe(ctx, &receiveOn{downstream: s, executor: e})
	})
}

// receiveOn is both the upstream subscriber and the subscription handed
// downstream, so Cancel can detach queued deliveries.
type receiveOn struct {
	executor Executor

	mu         sync.Mutex
	downstream Subscriber
	upstream   Subscription
}

func (r *receiveOn) OnSubscribe(s Subscription) {
	r.mu.Lock()
	r.upstream = s
	d := r.downstream
	r.mu.Unlock()

	if d != nil {
		d.OnSubscribe(r)
	}
}

func (r *receiveOn) OnNext(body []byte) {
	r.executor.Execute(func() {
		if d := r.current(); d != nil {
			d.OnNext(body)
		}
	})
}

func (r *receiveOn) OnError(err error) {
	r.executor.Execute(func() {
		if d := r.detach(); d != nil {
			d.OnError(err)
		}
	})
}

func (r *receiveOn) OnComplete() {
	r.executor.Execute(func() {
		if d := r.detach(); d != nil {
			d.OnComplete()
		}
	})
}

// Request implements Subscription.
func (r *receiveOn) Request(n int64) {
	r.mu.Lock()
	up := r.upstream
	r.mu.Unlock()

	if up != nil {
		up.Request(n)
	}
}

// Cancel implements Subscription.
func (r *receiveOn) Cancel() {
	r.mu.Lock()
	r.downstream = nil
	up := r.upstream
	r.mu.Unlock()

	if up != nil {
		up.Cancel()
	}
}

func (r *receiveOn) current() Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.downstream
}

func (r *receiveOn) detach() Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.downstream
	r.downstream = nil
	return d
}
