package buffer

import (
	"errors"
	"sync"
	"time"
)

// -----------------------------------------------------------------------------

// ErrOverflow marks a bounded buffer that has been outrun by its producer.
// An overflowed buffer cannot recover; the owner must discard it.
var ErrOverflow = errors.New("ring buffer overflow")

// -----------------------------------------------------------------------------

// PopState reports the outcome of a Pop call.
type PopState int

const (
	// PopValid means a value was retrieved.
	PopValid PopState = iota
	// PopOverflow means the buffer has overflowed. Overflow is sticky: every
	// subsequent Pop returns it, even if unread values remain inside.
	PopOverflow
	// PopTimeout means no value arrived within the timeout.
	PopTimeout
)

func (s PopState) String() string {
	switch s {
	case PopValid:
		return "valid"
	case PopOverflow:
		return "overflow"
	case PopTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------

// RingBuffer is a fixed-capacity circular buffer shared between producers and
// consumers. Push never blocks; Pop blocks up to a timeout. Once the writer
// outruns the reader by more than the capacity the buffer is in overflow and
// stays there until discarded.
type RingBuffer[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	data     []T
	writePos uint64
	readPos  uint64
}

// -----------------------------------------------------------------------------

// NewRingBuffer allocates a ring buffer with the given fixed capacity.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	if size <= 0 {
		size = 1
	}
	rb := &RingBuffer[T]{data: make([]T, size)}
	rb.cond = sync.NewCond(&rb.mu)
	return rb
}

// -----------------------------------------------------------------------------

// Push appends a value without blocking. It returns false once the buffer is
// in overflow; the value is then dropped and the buffer stays overflowed.
func (rb *RingBuffer[T]) Push(value T) bool {
	rb.mu.Lock()

	if rb.overflowed() {
		rb.mu.Unlock()
		return false
	}

	rb.data[rb.writePos%uint64(len(rb.data))] = value
	rb.writePos++
	rb.mu.Unlock()

	rb.cond.Signal()
	return true
}

// -----------------------------------------------------------------------------

// Pop removes the oldest value, waiting up to timeout for one to arrive.
// Overflow is reported immediately, before any wait.
func (rb *RingBuffer[T]) Pop(timeout time.Duration) (T, PopState) {
	var zero T

	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.overflowed() {
		return zero, PopOverflow
	}

	if rb.readPos == rb.writePos {
		// sync.Cond has no timed wait; a one-shot timer broadcasting at the
		// deadline turns Wait into one.
		deadline := time.Now().Add(timeout)
		timer := time.AfterFunc(timeout, rb.cond.Broadcast)
		defer timer.Stop()

		for rb.readPos == rb.writePos {
			if !time.Now().Before(deadline) {
				return zero, PopTimeout
			}
			rb.cond.Wait()
		}
	}

	value := rb.data[rb.readPos%uint64(len(rb.data))]
	rb.readPos++

	return value, PopValid
}

// -----------------------------------------------------------------------------

// overflowed must be called with the mutex held. The write position is allowed
// to reach size+1 ahead of the read position: the push that crosses the
// capacity still lands, and everything after it observes overflow.
func (rb *RingBuffer[T]) overflowed() bool {
	return rb.writePos-rb.readPos > uint64(len(rb.data))
}
