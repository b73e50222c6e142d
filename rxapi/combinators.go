package rxapi

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Await subscribes to p and blocks until it terminates or ctx is done.
// In the latter case the subscription is cancelled and ctx.Err() returned.
func Await(ctx context.Context, p Publisher) ([]byte, error) {
	w := &awaiter{done: make(chan struct{})}
	p.Subscribe(ctx, w)

	select {
	case <-w.done:
		return w.body, w.err
	case <-ctx.Done():
		select {
		case <-w.done:
			return w.body, w.err
		default:
		}
		w.cancel()
		return nil, ctx.Err()
	}
}

// AwaitDecoded is Await followed by Decode.
func AwaitDecoded[T any](ctx context.Context, p Publisher) (T, error) {
	body, err := Await(ctx, p)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](body)
}

type awaiter struct {
	mu   sync.Mutex
	sub  Subscription
	once sync.Once
	done chan struct{}

	body []byte
	err  error
}

func (w *awaiter) OnSubscribe(s Subscription) {
	w.mu.Lock()
	w.sub = s
	w.mu.Unlock()
	s.Request(Unlimited)
}

func (w *awaiter) OnNext(body []byte) {
	w.body = body
}

func (w *awaiter) OnError(err error) {
	w.err = err
	w.finish()
}

func (w *awaiter) OnComplete() {
	w.finish()
}

func (w *awaiter) finish() {
	w.once.Do(func() { close(w.done) })
}

func (w *awaiter) cancel() {
	w.mu.Lock()
	sub := w.sub
	w.mu.Unlock()
	if sub != nil {
		sub.Cancel()
	}
}

// Deferred calls factory once per subscription and subscribes to the
// Publisher it returns.
func Deferred(factory func() Publisher) Publisher {
	return PublisherFunc(func(ctx context.Context, s Subscriber) {
		factory().Subscribe(ctx, s)
	})
}

// Just emits body on the first positive demand, then completes.
func Just(body []byte) Publisher {
	return PublisherFunc(func(_ context.Context, s Subscriber) {
		s.OnSubscribe(&valueSubscription{target: s, body: body})
	})
}

// Fail emits err right after OnSubscribe.
func Fail(err error) Publisher {
	return PublisherFunc(func(_ context.Context, s Subscriber) {
		v := &valueSubscription{target: s, err: err}
		s.OnSubscribe(v)
		if target := v.detach(); target != nil {
			target.OnError(err)
		}
	})
}

type valueSubscription struct {
	mu     sync.Mutex
	target Subscriber
	body   []byte
	err    error
}

func (v *valueSubscription) Request(n int64) {
	target := v.detach()
	if target == nil {
		return
	}
	switch {
	case n <= 0:
		target.OnError(ErrInvalidDemand)
	case v.err != nil:
		target.OnError(v.err)
	default:
		target.OnNext(v.body)
		target.OnComplete()
	}
}

func (v *valueSubscription) Cancel() {
	v.detach()
}

func (v *valueSubscription) detach() Subscriber {
	v.mu.Lock()
	defer v.mu.Unlock()
	target := v.target
	v.target = nil
	return target
}

// FlatMap subscribes to fn(value) once p has produced its value and relays
// that publisher's events downstream. Errors from either stage terminate
// the chain; cancelling it cancels whichever stage is active.
func FlatMap(p Publisher, fn func(body []byte) Publisher) Publisher {
	return PublisherFunc(func(ctx context.Context, s Subscriber) {
		fm := &flatMap{ctx: ctx, downstream: s, fn: fn}
		s.OnSubscribe(fm)
		p.Subscribe(ctx, upstreamSubscriber{fm})
	})
}

type flatMap struct {
	ctx context.Context
	fn  func([]byte) Publisher

	mu         sync.Mutex
	downstream Subscriber
	upstream   Subscription
	inner      Subscription
	requested  bool
	gotValue   bool
}

// Request implements Subscription.
func (f *flatMap) Request(n int64) {
	if n <= 0 {
		f.terminate(ErrInvalidDemand)
		return
	}

	f.mu.Lock()
	if f.downstream == nil || f.requested {
		f.mu.Unlock()
		return
	}
	f.requested = true
	upstream := f.upstream
	f.mu.Unlock()

	if upstream != nil {
		upstream.Request(1)
	}
}

// Cancel implements Subscription.
func (f *flatMap) Cancel() {
	f.mu.Lock()
	f.downstream = nil
	upstream, inner := f.upstream, f.inner
	f.mu.Unlock()

	if upstream != nil {
		upstream.Cancel()
	}
	if inner != nil {
		inner.Cancel()
	}
}

// terminate delivers err downstream once and cancels both stages.
func (f *flatMap) terminate(err error) {
	f.mu.Lock()
	target := f.downstream
	f.downstream = nil
	upstream, inner := f.upstream, f.inner
	f.mu.Unlock()

	if upstream != nil {
		upstream.Cancel()
	}
	if inner != nil {
		inner.Cancel()
	}
	if target == nil {
		return
	}
	if err != nil {
		target.OnError(err)
		return
	}
	target.OnComplete()
}

func (f *flatMap) live() Subscriber {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downstream
}

type upstreamSubscriber struct{ f *flatMap }

func (u upstreamSubscriber) OnSubscribe(s Subscription) {
	u.f.mu.Lock()
	u.f.upstream = s
	cancelled := u.f.downstream == nil
	requested := u.f.requested
	u.f.mu.Unlock()

	switch {
	case cancelled:
		s.Cancel()
	case requested:
		s.Request(1)
	}
}

func (u upstreamSubscriber) OnNext(body []byte) {
	u.f.mu.Lock()
	if u.f.downstream == nil || u.f.gotValue {
		u.f.mu.Unlock()
		return
	}
	u.f.gotValue = true
	u.f.mu.Unlock()

	next := u.f.fn(body)
	if next == nil {
		u.f.terminate(nil)
		return
	}
	next.Subscribe(u.f.ctx, innerSubscriber{u.f})
}

func (u upstreamSubscriber) OnError(err error) {
	u.f.terminate(err)
}

func (u upstreamSubscriber) OnComplete() {
	u.f.mu.Lock()
	gotValue := u.f.gotValue
	u.f.mu.Unlock()

	// the inner stage owns completion once a value has been mapped
	if !gotValue {
		u.f.terminate(nil)
	}
}

type innerSubscriber struct{ f *flatMap }

func (i innerSubscriber) OnSubscribe(s Subscription) {
	i.f.mu.Lock()
	i.f.inner = s
	cancelled := i.f.downstream == nil
	i.f.mu.Unlock()

	if cancelled {
		s.Cancel()
		return
	}
	s.Request(Unlimited)
}

func (i innerSubscriber) OnNext(body []byte) {
	if target := i.f.live(); target != nil {
		target.OnNext(body)
	}
}

func (i innerSubscriber) OnError(err error) {
	i.f.terminate(err)
}

func (i innerSubscriber) OnComplete() {
	i.f.terminate(nil)
}

// Collect subscribes to every publisher concurrently and returns their
// values in input order. The first error cancels the remaining
// subscriptions and is returned.
func Collect(ctx context.Context, ps ...Publisher) ([][]byte, error) {
	results := make([][]byte, len(ps))
	g, gctx := errgroup.WithContext(ctx)

	for i, p := range ps {
		g.Go(func() error {
			body, err := Await(gctx, p)
			if err != nil {
				return err
			}
			results[i] = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
