package interfaces

import (
	"context"

	"quote-server/src/dispatcher"
	"quote-server/src/orderbook"
)

// -----------------------------------------------------------------------------

// ISource defines the interface for a market data source maintaining live
// order books and fanning out book updates and trades.
type ISource interface {
	// Ready reports whether the initial snapshots are loaded and updates
	// are flowing
	Ready() bool

	// HasProduct reports whether the source tracks the given product
	HasProduct(productID string) bool

	// GetOrderBook visits the live book for one product under the source's
	// lock; returns false if the product is unknown or the source is not
	// ready
	GetOrderBook(productID string, visit func(*orderbook.Book)) bool

	// SubscribeOrderBook registers a consumer for resolved book updates of
	// one product
	SubscribeOrderBook(productID string) *dispatcher.Subscriber[orderbook.Update]

	// SubscribeTrade registers a consumer for trades of one product
	SubscribeTrade(productID string) *dispatcher.Subscriber[orderbook.Trade]

	// Run drives the source until the context is cancelled or the feed fails
	Run(ctx context.Context) error
}
