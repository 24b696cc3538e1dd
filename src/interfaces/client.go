package interfaces

import (
	"context"

	"quote-server/src/coinbase"
)

// -----------------------------------------------------------------------------

// IFeedClient defines the interface to the exchange feed: REST snapshots and
// the streaming full channel.
type IFeedClient interface {
	// GetOrderBook fetches the level-3 book snapshot for one product
	GetOrderBook(ctx context.Context, productID string) (*coinbase.OrderBook, error)

	// SubscribeFull streams full-channel events for the given products,
	// invoking onEvent per decoded event in arrival order. Blocks until the
	// context is cancelled or the stream fails.
	SubscribeFull(ctx context.Context, products []string, onEvent func(*coinbase.Full) error) error
}
