package source

import (
	"errors"
	"fmt"
	"time"

	"quote-server/src/buffer"
	"quote-server/src/coinbase"
	"quote-server/src/orderbook"
)

// -----------------------------------------------------------------------------

// ErrInvalidSide marks a feed event carrying a side tag that is neither buy
// nor sell.
var ErrInvalidSide = errors.New("invalid order side")

// -----------------------------------------------------------------------------

// FullInterpreter translates full-channel events into book updates and
// trades, queueing them for the dispatch loops. Every event produces exactly
// one book update (possibly sequence-only); match events additionally
// produce one trade.
type FullInterpreter struct {
	bookUpdates *buffer.RingBuffer[orderbook.Update]
	trades      *buffer.RingBuffer[orderbook.Trade]
}

// -----------------------------------------------------------------------------

// NewFullInterpreter creates an interpreter with internal queues of the
// given capacity.
func NewFullInterpreter(bufferSize int) *FullInterpreter {
	return &FullInterpreter{
		bookUpdates: buffer.NewRingBuffer[orderbook.Update](bufferSize),
		trades:      buffer.NewRingBuffer[orderbook.Trade](bufferSize),
	}
}

// -----------------------------------------------------------------------------

// Apply translates one event and queues its outputs. The queues must be
// drained fast enough; a full queue is a fatal overflow because a dropped
// update would corrupt every downstream book.
func (i *FullInterpreter) Apply(full *coinbase.Full) error {
	update := orderbook.Update{
		ProductID: full.ProductID,
		Sequence:  full.Sequence,
		Time:      full.Time,
	}

	switch full.Type {
	case coinbase.FullTypeReceived, coinbase.FullTypeActivate:
		// no resting-book effect, sequence bump only

	case coinbase.FullTypeOpen:
		side, err := mapSide(full.Side)
		if err != nil {
			return err
		}
		entry := orderbook.Entry{
			OrderID: full.Open.OrderID,
			Price:   full.Open.Price,
			Size:    full.Open.RemainingSize,
		}
		update.SetEntry(side, entry)

	case coinbase.FullTypeDone:
		// market orders never rested; their done carries a zero price
		if full.Done.Price.IsZero() {
			break
		}
		side, err := mapSide(full.Side)
		if err != nil {
			return err
		}
		entry := orderbook.Entry{
			OrderID: full.Done.OrderID,
			Price:   full.Done.Price,
		}
		update.SetEntry(side, entry)

	case coinbase.FullTypeMatch:
		// the side tag names the maker side
		side, err := mapSide(full.Side)
		if err != nil {
			return err
		}
		entry := orderbook.Entry{
			OrderID: full.Match.MakerOrderID,
			Price:   full.Match.Price,
			Size:    full.Match.Size.Neg(),
		}
		update.SetEntry(side, entry)

		trade := orderbook.Trade{
			ProductID:    full.ProductID,
			Time:         full.Time,
			Side:         side,
			MakerOrderID: full.Match.MakerOrderID,
			TakerOrderID: full.Match.TakerOrderID,
			Price:        full.Match.Price,
			Size:         full.Match.Size,
			Sequence:     full.Sequence,
		}
		if !i.trades.Push(trade) {
			return fmt.Errorf("trade queue: %w", buffer.ErrOverflow)
		}

	case coinbase.FullTypeChange:
		// funds changes on not-yet-resting orders carry a zero price
		if full.Change.Price.IsZero() {
			break
		}
		side, err := mapSide(full.Side)
		if err != nil {
			return err
		}
		entry := orderbook.Entry{
			OrderID: full.Change.OrderID,
			Price:   full.Change.Price,
			Size:    full.Change.NewSize.Sub(full.Change.OldSize),
		}
		update.SetEntry(side, entry)

	default:
		return fmt.Errorf("%w: %q", coinbase.ErrUnknownEventType, full.Type)
	}

	if !i.bookUpdates.Push(update) {
		return fmt.Errorf("book update queue: %w", buffer.ErrOverflow)
	}
	return nil
}

// -----------------------------------------------------------------------------

// PopBookUpdate dequeues the next book update, waiting up to timeout.
func (i *FullInterpreter) PopBookUpdate(timeout time.Duration) (orderbook.Update, buffer.PopState) {
	return i.bookUpdates.Pop(timeout)
}

// PopTrade dequeues the next trade, waiting up to timeout.
func (i *FullInterpreter) PopTrade(timeout time.Duration) (orderbook.Trade, buffer.PopState) {
	return i.trades.Pop(timeout)
}

// -----------------------------------------------------------------------------

// mapSide translates a feed side tag.
func mapSide(side string) (orderbook.Side, error) {
	switch side {
	case "buy":
		return orderbook.SideBid, nil
	case "sell":
		return orderbook.SideAsk, nil
	default:
		return orderbook.SideBid, fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}
}
