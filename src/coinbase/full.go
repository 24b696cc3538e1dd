package coinbase

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------

var (
	// ErrUnknownEventType marks a full-channel message carrying a type tag
	// this codec does not know. The book cannot be trusted past an event we
	// failed to interpret, so decoding stops the feed.
	ErrUnknownEventType = errors.New("unknown full channel event type")

	// ErrMissingField marks a full-channel message lacking a field its event
	// type requires.
	ErrMissingField = errors.New("missing full channel field")
)

// -----------------------------------------------------------------------------

// FullType tags the event variants of the full channel.
type FullType string

const (
	FullTypeReceived FullType = "received"
	FullTypeOpen     FullType = "open"
	FullTypeDone     FullType = "done"
	FullTypeMatch    FullType = "match"
	FullTypeChange   FullType = "change"
	FullTypeActivate FullType = "activate"
)

// -----------------------------------------------------------------------------

// Received reports an order accepted by the matching engine. It carries no
// resting-book effect. Market orders have funds instead of size and price.
type Received struct {
	OrderID   string
	OrderType string
	Size      decimal.Decimal
	Price     decimal.Decimal
	Funds     decimal.Decimal
}

// Open reports an order resting on the book with its remaining size.
type Open struct {
	OrderID       string
	Price         decimal.Decimal
	RemainingSize decimal.Decimal
}

// Done reports an order leaving the book. Market orders never rested and
// carry a zero price.
type Done struct {
	OrderID       string
	Price         decimal.Decimal
	RemainingSize decimal.Decimal
	Reason        string
}

// Match reports a fill between a resting maker order and an incoming taker.
type Match struct {
	MakerOrderID string
	TakerOrderID string
	Price        decimal.Decimal
	Size         decimal.Decimal
}

// Change reports an order's size changing while resting (or before resting,
// with a zero price, for funds changes on market orders).
type Change struct {
	OrderID string
	Price   decimal.Decimal
	OldSize decimal.Decimal
	NewSize decimal.Decimal
}

// Activate reports a stop order becoming eligible. No resting-book effect.
type Activate struct{}

// -----------------------------------------------------------------------------

// Full is one decoded full-channel event: the common envelope plus exactly
// one payload, selected by Type. Consumers switch on Type and must handle
// every variant.
type Full struct {
	Type      FullType
	Time      string
	ProductID string
	Sequence  int64
	Side      string

	Received *Received
	Open     *Open
	Done     *Done
	Match    *Match
	Change   *Change
	Activate *Activate
}

// -----------------------------------------------------------------------------

// fullMessage is the raw JSON shape. Decimal fields arrive as strings; which
// ones are present depends on the event type.
type fullMessage struct {
	Type      string `json:"type"`
	Time      string `json:"time"`
	ProductID string `json:"product_id"`
	Sequence  int64  `json:"sequence"`
	Side      string `json:"side"`

	OrderID       string `json:"order_id"`
	OrderType     string `json:"order_type"`
	Price         string `json:"price"`
	Size          string `json:"size"`
	Funds         string `json:"funds"`
	RemainingSize string `json:"remaining_size"`
	Reason        string `json:"reason"`
	MakerOrderID  string `json:"maker_order_id"`
	TakerOrderID  string `json:"taker_order_id"`
	OldSize       string `json:"old_size"`
	NewSize       string `json:"new_size"`
}

// -----------------------------------------------------------------------------

// ParseFull decodes one full-channel message. An unknown type tag or a
// missing required field is a decode error; absent decimal fields (market
// orders carry no price) decode as zero.
func ParseFull(data []byte) (Full, error) {
	var msg fullMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Full{}, fmt.Errorf("unmarshal full channel message: %w", err)
	}

	full := Full{
		Type:      FullType(msg.Type),
		Time:      msg.Time,
		ProductID: msg.ProductID,
		Sequence:  msg.Sequence,
		Side:      msg.Side,
	}

	if msg.ProductID == "" {
		return Full{}, fmt.Errorf("%w: product_id", ErrMissingField)
	}

	price, err := parseDecimal("price", msg.Price)
	if err != nil {
		return Full{}, err
	}
	size, err := parseDecimal("size", msg.Size)
	if err != nil {
		return Full{}, err
	}
	remainingSize, err := parseDecimal("remaining_size", msg.RemainingSize)
	if err != nil {
		return Full{}, err
	}

	switch full.Type {
	case FullTypeReceived:
		funds, err := parseDecimal("funds", msg.Funds)
		if err != nil {
			return Full{}, err
		}
		if msg.OrderID == "" {
			return Full{}, fmt.Errorf("%w: order_id", ErrMissingField)
		}
		full.Received = &Received{
			OrderID:   msg.OrderID,
			OrderType: msg.OrderType,
			Size:      size,
			Price:     price,
			Funds:     funds,
		}

	case FullTypeOpen:
		if msg.OrderID == "" {
			return Full{}, fmt.Errorf("%w: order_id", ErrMissingField)
		}
		full.Open = &Open{
			OrderID:       msg.OrderID,
			Price:         price,
			RemainingSize: remainingSize,
		}

	case FullTypeDone:
		if msg.OrderID == "" {
			return Full{}, fmt.Errorf("%w: order_id", ErrMissingField)
		}
		full.Done = &Done{
			OrderID:       msg.OrderID,
			Price:         price,
			RemainingSize: remainingSize,
			Reason:        msg.Reason,
		}

	case FullTypeMatch:
		if msg.MakerOrderID == "" {
			return Full{}, fmt.Errorf("%w: maker_order_id", ErrMissingField)
		}
		if msg.TakerOrderID == "" {
			return Full{}, fmt.Errorf("%w: taker_order_id", ErrMissingField)
		}
		full.Match = &Match{
			MakerOrderID: msg.MakerOrderID,
			TakerOrderID: msg.TakerOrderID,
			Price:        price,
			Size:         size,
		}

	case FullTypeChange:
		oldSize, err := parseDecimal("old_size", msg.OldSize)
		if err != nil {
			return Full{}, err
		}
		newSize, err := parseDecimal("new_size", msg.NewSize)
		if err != nil {
			return Full{}, err
		}
		if msg.OrderID == "" {
			return Full{}, fmt.Errorf("%w: order_id", ErrMissingField)
		}
		full.Change = &Change{
			OrderID: msg.OrderID,
			Price:   price,
			OldSize: oldSize,
			NewSize: newSize,
		}

	case FullTypeActivate:
		full.Activate = &Activate{}

	default:
		return Full{}, fmt.Errorf("%w: %q", ErrUnknownEventType, msg.Type)
	}

	return full, nil
}

// -----------------------------------------------------------------------------

// parseDecimal parses an exchange decimal string. Absent fields are zero.
func parseDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q for %s: %w", value, field, err)
	}
	return d, nil
}
