package orderbook

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------

var (
	// ErrMissingEntry marks an update that references an order the book does
	// not hold: a size reduction or a price lookup for an unknown order id.
	// The book can no longer be trusted when this happens mid-stream.
	ErrMissingEntry = errors.New("missing order book entry")
)

// -----------------------------------------------------------------------------

// Side distinguishes the two halves of a book.
type Side int

const (
	SideBid Side = iota
	SideAsk
)

func (s Side) String() string {
	switch s {
	case SideBid:
		return "bid"
	case SideAsk:
		return "ask"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideBid {
		return SideAsk
	}
	return SideBid
}

// -----------------------------------------------------------------------------

// Entry is one resting order on the book.
type Entry struct {
	OrderID string          `json:"order_id"`
	Price   decimal.Decimal `json:"price"`
	Size    decimal.Decimal `json:"size"`
}

// Update is one incremental book change. At most one of Bid/Ask is set; an
// update with neither only bumps the sequence. A zero Price asks the book to
// resolve the price by order id; a negative Size reduces the resting size
// instead of replacing it.
type Update struct {
	ProductID string `json:"product_id"`
	Sequence  int64  `json:"sequence"`
	Time      string `json:"time,omitempty"`
	Bid       *Entry `json:"bid,omitempty"`
	Ask       *Entry `json:"ask,omitempty"`
}

// SetEntry attaches the entry on the given side.
func (u *Update) SetEntry(side Side, e Entry) {
	if side == SideBid {
		u.Bid = &e
	} else {
		u.Ask = &e
	}
}

// Trade is one match between a resting maker order and an incoming taker.
type Trade struct {
	ProductID    string          `json:"product_id"`
	Time         string          `json:"time"`
	Side         Side            `json:"side"`
	MakerOrderID string          `json:"maker_order_id"`
	TakerOrderID string          `json:"taker_order_id"`
	Price        decimal.Decimal `json:"price"`
	Size         decimal.Decimal `json:"size"`
	Sequence     int64           `json:"sequence"`
}

// -----------------------------------------------------------------------------

// level holds every entry resting at one price, in arrival order.
type level struct {
	price   decimal.Decimal
	entries []Entry
}

// levels is an ordered list of price levels: descending for bids, ascending
// for asks. Entries within a level keep FIFO arrival order.
type levels struct {
	descending bool
	data       []*level
}

// search returns the index of the first level at or past price in the side's
// ordering, and whether a level with exactly that price exists there.
func (ls *levels) search(price decimal.Decimal) (int, bool) {
	idx := sort.Search(len(ls.data), func(i int) bool {
		cmp := ls.data[i].price.Cmp(price)
		if ls.descending {
			return cmp <= 0
		}
		return cmp >= 0
	})

	if idx < len(ls.data) && ls.data[idx].price.Equal(price) {
		return idx, true
	}
	return idx, false
}

// append adds the entry to the back of its price level, creating the level
// when absent.
func (ls *levels) append(price decimal.Decimal, entry Entry) {
	idx, found := ls.search(price)
	if found {
		ls.data[idx].entries = append(ls.data[idx].entries, entry)
		return
	}

	lvl := &level{price: price, entries: []Entry{entry}}
	ls.data = append(ls.data, nil)
	copy(ls.data[idx+1:], ls.data[idx:])
	ls.data[idx] = lvl
}

// removeAt drops the level at idx.
func (ls *levels) removeAt(idx int) {
	ls.data = append(ls.data[:idx], ls.data[idx+1:]...)
}

// flatten copies out every entry in level order.
func (ls *levels) flatten() []Entry {
	var entries []Entry
	for _, lvl := range ls.data {
		entries = append(entries, lvl.entries...)
	}
	return entries
}

// -----------------------------------------------------------------------------

// Book is one product's order book: two ordered sides plus an order-id to
// price index. The sequence is monotonically non-decreasing for the life of
// the book; every mutation goes through Update.
type Book struct {
	sequence int64
	bids     levels
	asks     levels
	prices   map[string]decimal.Decimal
}

// -----------------------------------------------------------------------------

// NewBook builds a book from a snapshot: its sequence and the resting entries
// per side, in the order the snapshot lists them.
func NewBook(sequence int64, bids, asks []Entry) *Book {
	book := &Book{
		sequence: sequence,
		bids:     levels{descending: true},
		asks:     levels{descending: false},
		prices:   make(map[string]decimal.Decimal, len(bids)+len(asks)),
	}

	for _, entry := range bids {
		book.bids.append(entry.Price, entry)
		book.prices[entry.OrderID] = entry.Price
	}
	for _, entry := range asks {
		book.asks.append(entry.Price, entry)
		book.prices[entry.OrderID] = entry.Price
	}

	return book
}

// -----------------------------------------------------------------------------

// Sequence returns the sequence of the last applied update.
func (b *Book) Sequence() int64 {
	return b.sequence
}

// Bids returns every resting bid, best price first, FIFO within a price.
func (b *Book) Bids() []Entry {
	return b.bids.flatten()
}

// Asks returns every resting ask, best price first, FIFO within a price.
func (b *Book) Asks() []Entry {
	return b.asks.flatten()
}

// -----------------------------------------------------------------------------

// Update applies one incremental change and returns it with price and size
// resolved to their concrete values. The sequence is taken from the update
// unconditionally, including for updates that carry no side payload.
func (b *Book) Update(u Update) (Update, error) {
	resolved := Update{
		ProductID: u.ProductID,
		Sequence:  u.Sequence,
		Time:      u.Time,
	}

	if u.Bid != nil {
		entry, err := b.updateSide(&b.bids, *u.Bid)
		if err != nil {
			return Update{}, err
		}
		resolved.Bid = &entry
	}

	if u.Ask != nil {
		entry, err := b.updateSide(&b.asks, *u.Ask)
		if err != nil {
			return Update{}, err
		}
		resolved.Ask = &entry
	}

	b.sequence = u.Sequence

	return resolved, nil
}

// -----------------------------------------------------------------------------

func (b *Book) updateSide(side *levels, e Entry) (Entry, error) {
	price := e.Price

	// price unknown, look it up by order id
	if price.IsZero() {
		indexed, ok := b.prices[e.OrderID]
		if !ok {
			return Entry{}, fmt.Errorf("%w: no price for order %s", ErrMissingEntry, e.OrderID)
		}
		price = indexed
	}

	levelIdx, found := side.search(price)
	entryIdx := -1
	var lvl *level
	if found {
		lvl = side.data[levelIdx]
		for i := range lvl.entries {
			if lvl.entries[i].OrderID == e.OrderID {
				entryIdx = i
				break
			}
		}
	}

	size := e.Size
	if size.Sign() < 0 {
		// negative size reduces the resting size
		if entryIdx < 0 {
			return Entry{}, fmt.Errorf("%w: size reduction for order %s", ErrMissingEntry, e.OrderID)
		}
		size = lvl.entries[entryIdx].Size.Add(size)
	}

	updated := Entry{OrderID: e.OrderID, Price: price, Size: size}

	switch {
	case !size.IsZero() && entryIdx >= 0:
		// in-place edit, price and therefore level ordering unchanged
		lvl.entries[entryIdx] = updated
	case !size.IsZero():
		side.append(price, updated)
		b.prices[e.OrderID] = price
	case entryIdx >= 0:
		// zero resulting size removes the entry
		lvl.entries = append(lvl.entries[:entryIdx], lvl.entries[entryIdx+1:]...)
		if len(lvl.entries) == 0 {
			side.removeAt(levelIdx)
		}
		delete(b.prices, e.OrderID)
	}

	return updated, nil
}
