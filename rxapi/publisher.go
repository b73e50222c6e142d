package rxapi

import (
	"context"
	"math"
)

// Unlimited is the demand a subscriber passes when it accepts any number of
// values. Publishers in this package never produce more than one.
const Unlimited int64 = math.MaxInt64

// Publisher produces at most one value followed by completion, or a single
// error.
type Publisher interface {
	// Subscribe attaches s. s.OnSubscribe is always called first, from the
	// calling goroutine. Cancelling ctx cancels the subscription.
	Subscribe(ctx context.Context, s Subscriber)
}

// Subscriber receives the events of a Publisher. After OnError or
// OnComplete no further methods are called.
type Subscriber interface {
	OnSubscribe(s Subscription)
	OnNext(body []byte)
	OnError(err error)
	OnComplete()
}

// Subscription links a Subscriber to a running Publisher.
type Subscription interface {
	// Request signals demand. The first positive demand starts the work;
	// non-positive demand fails the subscription with ErrInvalidDemand.
	Request(n int64)
	// Cancel detaches the subscriber and aborts any in-flight work.
	// No events are delivered afterwards.
	Cancel()
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ctx context.Context, s Subscriber)

// Subscribe calls f(ctx, s).
func (f PublisherFunc) Subscribe(ctx context.Context, s Subscriber) {
	f(ctx, s)
}

// Sink returns a Subscriber that requests Unlimited on subscription, passes
// the value to onValue and reports termination to onDone (nil on success).
// Either callback may be nil.
func Sink(onValue func(body []byte), onDone func(err error)) Subscriber {
	return &sink{onValue: onValue, onDone: onDone}
}

type sink struct {
	onValue func([]byte)
	onDone  func(error)
}

func (s *sink) OnSubscribe(sub Subscription) {
	sub.Request(Unlimited)
}

func (s *sink) OnNext(body []byte) {
	if s.onValue != nil {
		s.onValue(body)
	}
}

func (s *sink) OnError(err error) {
	if s.onDone != nil {
		s.onDone(err)
	}
}

func (s *sink) OnComplete() {
	if s.onDone != nil {
		s.onDone(nil)
	}
}
