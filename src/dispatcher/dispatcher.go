package dispatcher

import (
	"sync"
	"sync/atomic"
	"time"

	"quote-server/src/buffer"
)

// -----------------------------------------------------------------------------

// Subscriber is a consumer handle owning a private bounded buffer. The
// consumer reads with Pop and signals disinterest with Close; the dispatcher
// observes the closed flag lazily on the next Dispatch and prunes the handle.
type Subscriber[T any] struct {
	buffer *buffer.RingBuffer[T]
	filter func(T) bool
	closed atomic.Bool
}

// Pop retrieves the next dispatched value, waiting up to timeout.
// buffer.PopOverflow means this consumer fell behind and has been dropped
// from the broadcast set.
func (s *Subscriber[T]) Pop(timeout time.Duration) (T, buffer.PopState) {
	return s.buffer.Pop(timeout)
}

// Close marks the subscriber for removal on the next Dispatch. Safe to call
// more than once and concurrently with Pop.
func (s *Subscriber[T]) Close() {
	s.closed.Store(true)
}

// -----------------------------------------------------------------------------

// Dispatcher forwards values to a dynamic set of subscribers, each backed by
// its own fixed-size ring buffer. Subscribers that close themselves or
// overflow are removed during Dispatch; registration never fails.
type Dispatcher[T any] struct {
	mu          sync.Mutex
	bufferSize  int
	subscribers map[*Subscriber[T]]struct{}
}

// -----------------------------------------------------------------------------

// NewDispatcher creates a dispatcher whose subscribers buffer up to
// bufferSize values each.
func NewDispatcher[T any](bufferSize int) *Dispatcher[T] {
	return &Dispatcher[T]{
		bufferSize:  bufferSize,
		subscribers: make(map[*Subscriber[T]]struct{}),
	}
}

// -----------------------------------------------------------------------------

// Subscribe registers a subscriber receiving every dispatched value.
func (d *Dispatcher[T]) Subscribe() *Subscriber[T] {
	return d.SubscribeFunc(nil)
}

// SubscribeFunc registers a subscriber receiving only values the filter
// accepts. A nil filter accepts everything.
func (d *Dispatcher[T]) SubscribeFunc(filter func(T) bool) *Subscriber[T] {
	subscriber := &Subscriber[T]{
		buffer: buffer.NewRingBuffer[T](d.bufferSize),
		filter: filter,
	}

	d.mu.Lock()
	d.subscribers[subscriber] = struct{}{}
	d.mu.Unlock()

	return subscriber
}

// -----------------------------------------------------------------------------

// Dispatch forwards the value to every live subscriber in one pass. Closed
// subscribers and subscribers whose buffer rejects the push are removed;
// removal never affects delivery to the remaining subscribers in the same
// call.
func (d *Dispatcher[T]) Dispatch(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for subscriber := range d.subscribers {
		if subscriber.closed.Load() {
			delete(d.subscribers, subscriber)
			continue
		}

		if subscriber.filter != nil && !subscriber.filter(value) {
			continue
		}

		if !subscriber.buffer.Push(value) {
			delete(d.subscribers, subscriber)
		}
	}
}

// -----------------------------------------------------------------------------

// Len reports the current subscriber count. Pruning is lazy, so the count
// includes closed subscribers that have not seen a Dispatch yet.
func (d *Dispatcher[T]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.subscribers)
}
