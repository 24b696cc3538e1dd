package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-server/src/buffer"
	"quote-server/src/coinbase"
	"quote-server/src/config"
	"quote-server/src/logger"
	"quote-server/src/models"
	"quote-server/src/orderbook"
)

// -----------------------------------------------------------------------------

// fakeFeedClient scripts snapshots and streams events handed to its channel.
type fakeFeedClient struct {
	snapshots map[string]*coinbase.OrderBook
	events    chan *coinbase.Full
}

func newFakeFeedClient() *fakeFeedClient {
	return &fakeFeedClient{
		snapshots: make(map[string]*coinbase.OrderBook),
		events:    make(chan *coinbase.Full, 64),
	}
}

func (f *fakeFeedClient) GetOrderBook(_ context.Context, productID string) (*coinbase.OrderBook, error) {
	snapshot, ok := f.snapshots[productID]
	if !ok {
		return nil, errors.New("no snapshot scripted")
	}
	return snapshot, nil
}

func (f *fakeFeedClient) SubscribeFull(ctx context.Context, _ []string, onEvent func(*coinbase.Full) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case full := <-f.events:
			if err := onEvent(full); err != nil {
				return err
			}
		}
	}
}

// -----------------------------------------------------------------------------

func testConfig() *models.MConfig {
	return &models.MConfig{
		Name: "test",
		Coinbase: models.MCoinbaseConfig{
			Products: []string{"BTC-USD"},
		},
		Buffers: models.MBuffersConfig{
			Subscriber: 32,
			Channel:    256,
		},
		Log: models.MLogConfig{Level: "error"},
	}
}

func testLogger() *logger.Logger {
	cfg := &config.Config{MConfig: &models.MConfig{Log: models.MLogConfig{Level: "error"}}}
	return logger.NewLogger(cfg, "test")
}

// -----------------------------------------------------------------------------

func TestSourceEndToEnd(t *testing.T) {
	client := newFakeFeedClient()
	client.snapshots["BTC-USD"] = &coinbase.OrderBook{
		Sequence: 5,
		Bids: []coinbase.BookEntry{
			{Price: dec("10.0"), Size: dec("1.0"), OrderID: "A"},
		},
	}

	s := NewCoinbaseSource(testConfig(), testLogger(), client)

	assert.True(t, s.HasProduct("BTC-USD"))
	assert.False(t, s.HasProduct("ETH-USD"))
	assert.False(t, s.Ready())
	assert.False(t, s.GetOrderBook("BTC-USD", func(*orderbook.Book) {}))

	books := s.SubscribeOrderBook("BTC-USD")
	trades := s.SubscribeTrade("BTC-USD")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, s.Ready, 2*time.Second, 10*time.Millisecond)

	// a resting order opens at 9.5
	client.events <- &coinbase.Full{
		Type:      coinbase.FullTypeOpen,
		ProductID: "BTC-USD",
		Sequence:  6,
		Side:      "buy",
		Open:      &coinbase.Open{OrderID: "B", Price: dec("9.5"), RemainingSize: dec("2.0")},
	}

	update, state := books.Pop(2 * time.Second)
	require.Equal(t, buffer.PopValid, state)
	assert.Equal(t, int64(6), update.Sequence)
	require.NotNil(t, update.Bid)
	assert.Equal(t, "B", update.Bid.OrderID)

	// the snapshot order gets partially filled
	client.events <- &coinbase.Full{
		Type:      coinbase.FullTypeMatch,
		ProductID: "BTC-USD",
		Time:      "2014-11-07T08:19:28.028459Z",
		Sequence:  7,
		Side:      "buy",
		Match: &coinbase.Match{
			MakerOrderID: "A",
			TakerOrderID: "T",
			Price:        dec("10.0"),
			Size:         dec("0.4"),
		},
	}

	update, state = books.Pop(2 * time.Second)
	require.Equal(t, buffer.PopValid, state)
	assert.Equal(t, int64(7), update.Sequence)
	require.NotNil(t, update.Bid)
	assert.Equal(t, "A", update.Bid.OrderID)
	// the dispatched delta carries the resolved remaining size
	assert.True(t, update.Bid.Size.Equal(dec("0.6")))

	trade, state := trades.Pop(2 * time.Second)
	require.Equal(t, buffer.PopValid, state)
	assert.Equal(t, "A", trade.MakerOrderID)
	assert.Equal(t, int64(7), trade.Sequence)

	ok := s.GetOrderBook("BTC-USD", func(b *orderbook.Book) {
		assert.Equal(t, int64(7), b.Sequence())
		bids := b.Bids()
		require.Len(t, bids, 2)
	})
	assert.True(t, ok)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("source did not stop on cancel")
	}
}

func TestSourceDropsEventsAtOrBelowSnapshot(t *testing.T) {
	client := newFakeFeedClient()
	client.snapshots["BTC-USD"] = &coinbase.OrderBook{Sequence: 5}

	s := NewCoinbaseSource(testConfig(), testLogger(), client)
	books := s.SubscribeOrderBook("BTC-USD")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	require.Eventually(t, s.Ready, 2*time.Second, 10*time.Millisecond)

	// already reflected in the snapshot
	client.events <- &coinbase.Full{
		Type:      coinbase.FullTypeReceived,
		ProductID: "BTC-USD",
		Sequence:  5,
		Side:      "buy",
		Received:  &coinbase.Received{OrderID: "X"},
	}
	client.events <- &coinbase.Full{
		Type:      coinbase.FullTypeReceived,
		ProductID: "BTC-USD",
		Sequence:  6,
		Side:      "buy",
		Received:  &coinbase.Received{OrderID: "Y"},
	}

	update, state := books.Pop(2 * time.Second)
	require.Equal(t, buffer.PopValid, state)
	assert.Equal(t, int64(6), update.Sequence)
}

func TestSourceStopsOnSequenceGap(t *testing.T) {
	client := newFakeFeedClient()
	client.snapshots["BTC-USD"] = &coinbase.OrderBook{Sequence: 5}

	s := NewCoinbaseSource(testConfig(), testLogger(), client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, s.Ready, 2*time.Second, 10*time.Millisecond)

	client.events <- &coinbase.Full{
		Type:      coinbase.FullTypeReceived,
		ProductID: "BTC-USD",
		Sequence:  9,
		Side:      "buy",
		Received:  &coinbase.Received{OrderID: "X"},
	}

	select {
	case err := <-done:
		require.ErrorIs(t, err, orderbook.ErrSequenceGap)
	case <-time.After(2 * time.Second):
		t.Fatal("source did not stop on sequence gap")
	}
}
