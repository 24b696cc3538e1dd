package source

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"quote-server/src/buffer"
	"quote-server/src/coinbase"
	"quote-server/src/dispatcher"
	"quote-server/src/interfaces"
	"quote-server/src/logger"
	"quote-server/src/models"
	"quote-server/src/orderbook"
)

// -----------------------------------------------------------------------------

const popInterval = 250 * time.Millisecond

// -----------------------------------------------------------------------------

// CoinbaseSource maintains live order books for a set of products by joining
// the streaming full channel with REST snapshots, and fans out resolved book
// updates and trades to subscribers.
//
// Sequencing: the feed is subscribed first so no event is missed, snapshots
// are fetched after, and events at or below a snapshot's sequence are
// silently dropped. A gap above a book's sequence means lost data and stops
// the source.
type CoinbaseSource struct {
	name     string
	logger   *logger.Logger
	client   interfaces.IFeedClient
	products []string

	interpreter     *FullInterpreter
	bookDispatcher  *dispatcher.Dispatcher[orderbook.Update]
	tradeDispatcher *dispatcher.Dispatcher[orderbook.Trade]

	mu    sync.Mutex
	books *orderbook.Books
	ready bool
}

// -----------------------------------------------------------------------------

// NewCoinbaseSource creates a source for the configured products.
func NewCoinbaseSource(config *models.MConfig, logger *logger.Logger, client interfaces.IFeedClient) *CoinbaseSource {
	return &CoinbaseSource{
		name:            "CoinbaseSource",
		logger:          logger,
		client:          client,
		products:        config.Coinbase.Products,
		interpreter:     NewFullInterpreter(config.Buffers.Channel),
		bookDispatcher:  dispatcher.NewDispatcher[orderbook.Update](config.Buffers.Subscriber),
		tradeDispatcher: dispatcher.NewDispatcher[orderbook.Trade](config.Buffers.Subscriber),
	}
}

// -----------------------------------------------------------------------------

// Ready reports whether the initial snapshots are loaded.
func (s *CoinbaseSource) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// HasProduct reports whether the source tracks the given product.
func (s *CoinbaseSource) HasProduct(productID string) bool {
	for _, p := range s.products {
		if p == productID {
			return true
		}
	}
	return false
}

// GetOrderBook visits the live book for one product. The visit runs under
// the source's lock and must not block. Returns false before the source is
// ready or for an unknown product.
func (s *CoinbaseSource) GetOrderBook(productID string, visit func(*orderbook.Book)) bool {
	s.mu.Lock()
	books := s.books
	ready := s.ready
	s.mu.Unlock()

	if !ready {
		return false
	}
	return books.Get(productID, visit)
}

// SubscribeOrderBook registers a consumer for resolved book updates of one
// product.
func (s *CoinbaseSource) SubscribeOrderBook(productID string) *dispatcher.Subscriber[orderbook.Update] {
	return s.bookDispatcher.SubscribeFunc(func(u orderbook.Update) bool {
		return u.ProductID == productID
	})
}

// SubscribeTrade registers a consumer for trades of one product.
func (s *CoinbaseSource) SubscribeTrade(productID string) *dispatcher.Subscriber[orderbook.Trade] {
	return s.tradeDispatcher.SubscribeFunc(func(t orderbook.Trade) bool {
		return t.ProductID == productID
	})
}

// -----------------------------------------------------------------------------

// Run drives the source: it opens the feed, fetches the initial snapshots,
// then pumps updates until the context is cancelled or the feed fails. Any
// error other than the context's own is fatal for the whole source.
func (s *CoinbaseSource) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := s.client.SubscribeFull(ctx, s.products, func(full *coinbase.Full) error {
			return s.interpreter.Apply(full)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("full channel feed: %w", err)
		}
		return err
	})

	group.Go(func() error {
		if err := s.fetchOrderBooks(ctx); err != nil {
			return err
		}

		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
		s.logger.Info("%s : snapshots loaded, source ready", s.name)

		group.Go(func() error { return s.dispatchOrderBooks(ctx) })
		group.Go(func() error { return s.dispatchTrades(ctx) })
		return nil
	})

	return group.Wait()
}

// -----------------------------------------------------------------------------

// fetchOrderBooks loads one level-3 snapshot per product, concurrently, and
// installs the resulting book registry.
func (s *CoinbaseSource) fetchOrderBooks(ctx context.Context) error {
	var mu sync.Mutex
	data := make(map[string]*orderbook.Book, len(s.products))

	group, ctx := errgroup.WithContext(ctx)
	for _, productID := range s.products {
		group.Go(func() error {
			snapshot, err := s.client.GetOrderBook(ctx, productID)
			if err != nil {
				return fmt.Errorf("snapshot %s: %w", productID, err)
			}

			book := orderbook.NewBook(
				snapshot.Sequence,
				bookEntries(snapshot.Bids),
				bookEntries(snapshot.Asks),
			)

			mu.Lock()
			data[productID] = book
			mu.Unlock()

			s.logger.Info("%s : loaded snapshot for %s at sequence %d", s.name, productID, snapshot.Sequence)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.books = orderbook.NewBooks(data)
	s.mu.Unlock()
	return nil
}

// bookEntries converts snapshot rows into book entries.
func bookEntries(rows []coinbase.BookEntry) []orderbook.Entry {
	entries := make([]orderbook.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, orderbook.Entry{
			OrderID: row.OrderID,
			Price:   row.Price,
			Size:    row.Size,
		})
	}
	return entries
}

// -----------------------------------------------------------------------------

// dispatchOrderBooks applies queued updates to the books and fans out the
// resolved deltas. Updates at or below a book's sequence are dropped.
func (s *CoinbaseSource) dispatchOrderBooks(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		update, state := s.interpreter.PopBookUpdate(popInterval)
		switch state {
		case buffer.PopTimeout:
			continue
		case buffer.PopOverflow:
			return fmt.Errorf("book update queue: %w", buffer.ErrOverflow)
		}

		s.mu.Lock()
		applied, err := s.books.Update(update)
		s.mu.Unlock()
		if err != nil {
			return fmt.Errorf("apply update %s seq %d: %w", update.ProductID, update.Sequence, err)
		}
		if applied == nil {
			// below the snapshot sequence
			continue
		}

		s.bookDispatcher.Dispatch(*applied)
	}
}

// dispatchTrades fans out queued trades.
func (s *CoinbaseSource) dispatchTrades(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		trade, state := s.interpreter.PopTrade(popInterval)
		switch state {
		case buffer.PopTimeout:
			continue
		case buffer.PopOverflow:
			return fmt.Errorf("trade queue: %w", buffer.ErrOverflow)
		}

		s.tradeDispatcher.Dispatch(trade)
	}
}
