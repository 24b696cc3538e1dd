package orderbook

import (
	"errors"
	"fmt"
	"sync"
)

// -----------------------------------------------------------------------------

var (
	// ErrUnknownProduct marks an update for a product the registry does not
	// hold. The product set is fixed at startup, so this is a wiring bug.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrSequenceGap marks an update more than one sequence ahead of its
	// book. Events were lost; the book cannot be repaired from the stream.
	ErrSequenceGap = errors.New("order book sequence gap")
)

// -----------------------------------------------------------------------------

// Books is the registry of per-product order books. It is the consistency
// gate between the feed and the broadcast side: updates are applied under an
// exclusive lock, reads run concurrently under a shared lock.
type Books struct {
	mu   sync.RWMutex
	data map[string]*Book
}

// -----------------------------------------------------------------------------

// NewBooks wraps the snapshot-constructed books. The registry owns them from
// here on.
func NewBooks(data map[string]*Book) *Books {
	return &Books{data: data}
}

// -----------------------------------------------------------------------------

// Get invokes the visitor with the product's book under the read lock. The
// book must not be retained or mutated by the visitor. Returns false if the
// product is unknown.
func (bs *Books) Get(productID string, visit func(*Book)) bool {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	book, ok := bs.data[productID]
	if !ok {
		return false
	}

	visit(book)
	return true
}

// -----------------------------------------------------------------------------

// Update applies the update to its product's book and returns the resolved
// update for broadcast. A stale update (sequence at or below the book's) is
// the expected overlap between the snapshot and the live stream and returns
// (nil, nil). A gap of more than one sequence returns ErrSequenceGap and
// leaves the book untouched.
func (bs *Books) Update(u Update) (*Update, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	book, ok := bs.data[u.ProductID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, u.ProductID)
	}

	if u.Sequence <= book.sequence {
		return nil, nil
	}

	if u.Sequence-book.sequence > 1 {
		return nil, fmt.Errorf("%w: book %s at %d, update at %d",
			ErrSequenceGap, u.ProductID, book.sequence, u.Sequence)
	}

	resolved, err := book.Update(u)
	if err != nil {
		return nil, err
	}

	return &resolved, nil
}
