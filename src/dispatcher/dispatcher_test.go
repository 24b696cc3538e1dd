package dispatcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-server/src/buffer"
)

func TestDispatchReachesAllSubscribers(t *testing.T) {
	d := NewDispatcher[int](8)

	first := d.Subscribe()
	second := d.Subscribe()

	d.Dispatch(1)
	d.Dispatch(2)

	for _, sub := range []*Subscriber[int]{first, second} {
		for _, want := range []int{1, 2} {
			value, state := sub.Pop(time.Second)
			require.Equal(t, buffer.PopValid, state)
			assert.Equal(t, want, value)
		}
	}
}

func TestClosedSubscriberIsPruned(t *testing.T) {
	d := NewDispatcher[int](8)

	closing := d.Subscribe()
	staying := d.Subscribe()
	require.Equal(t, 2, d.Len())

	closing.Close()
	d.Dispatch(1)

	assert.Equal(t, 1, d.Len())

	value, state := staying.Pop(time.Second)
	require.Equal(t, buffer.PopValid, state)
	assert.Equal(t, 1, value)
}

func TestOverflowedSubscriberIsRemovedWithoutAffectingOthers(t *testing.T) {
	d := NewDispatcher[int](4)

	slow := d.Subscribe()
	fast := d.Subscribe()

	// fill both short of overflow, then drain only the fast one
	for i := 0; i < 3; i++ {
		d.Dispatch(i)
	}
	for i := 0; i < 3; i++ {
		value, state := fast.Pop(time.Second)
		require.Equal(t, buffer.PopValid, state)
		require.Equal(t, i, value)
	}

	// the slow subscriber crosses its capacity and gets dropped mid-pass;
	// the fast one still receives every value from the same calls
	for i := 3; i < 7; i++ {
		d.Dispatch(i)
	}

	assert.Equal(t, 1, d.Len())

	_, state := slow.Pop(10 * time.Millisecond)
	assert.Equal(t, buffer.PopOverflow, state)

	for i := 3; i < 7; i++ {
		value, state := fast.Pop(time.Second)
		require.Equal(t, buffer.PopValid, state)
		assert.Equal(t, i, value)
	}
}

func TestFilteredSubscription(t *testing.T) {
	d := NewDispatcher[int](8)

	even := d.SubscribeFunc(func(v int) bool { return v%2 == 0 })

	for i := 0; i < 6; i++ {
		d.Dispatch(i)
	}

	for _, want := range []int{0, 2, 4} {
		value, state := even.Pop(time.Second)
		require.Equal(t, buffer.PopValid, state)
		assert.Equal(t, want, value)
	}

	_, state := even.Pop(10 * time.Millisecond)
	assert.Equal(t, buffer.PopTimeout, state)

	// rejected values must not count against the subscriber
	assert.Equal(t, 1, d.Len())
}
