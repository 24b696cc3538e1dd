package coinbase

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------

// BookEntry is one resting order from a level-3 REST snapshot, delivered on
// the wire as a ["price", "size", "order_id"] array.
type BookEntry struct {
	Price   decimal.Decimal
	Size    decimal.Decimal
	OrderID string
}

// UnmarshalJSON decodes the positional array form.
func (e *BookEntry) UnmarshalJSON(data []byte) error {
	var fields []string
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("unmarshal book entry: %w", err)
	}
	if len(fields) != 3 {
		return fmt.Errorf("book entry has %d fields, want 3", len(fields))
	}

	price, err := parseDecimal("price", fields[0])
	if err != nil {
		return err
	}
	size, err := parseDecimal("size", fields[1])
	if err != nil {
		return err
	}

	e.Price = price
	e.Size = size
	e.OrderID = fields[2]
	return nil
}

// -----------------------------------------------------------------------------

// OrderBook is a full level-3 snapshot: the sequence it was taken at and
// every resting order per side, bids first-to-last as listed by the exchange.
type OrderBook struct {
	Sequence int64       `json:"sequence"`
	Bids     []BookEntry `json:"bids"`
	Asks     []BookEntry `json:"asks"`
}

// -----------------------------------------------------------------------------

// ParseOrderBook decodes a level-3 book snapshot response.
func ParseOrderBook(data []byte) (OrderBook, error) {
	var book OrderBook
	if err := json.Unmarshal(data, &book); err != nil {
		return OrderBook{}, fmt.Errorf("unmarshal order book snapshot: %w", err)
	}
	return book, nil
}
