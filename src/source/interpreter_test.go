package source

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-server/src/buffer"
	"quote-server/src/coinbase"
	"quote-server/src/orderbook"
)

// -----------------------------------------------------------------------------

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func popUpdate(t *testing.T, i *FullInterpreter) orderbook.Update {
	t.Helper()
	update, state := i.PopBookUpdate(100 * time.Millisecond)
	require.Equal(t, buffer.PopValid, state)
	return update
}

// -----------------------------------------------------------------------------

func TestApplyReceivedBumpsSequenceOnly(t *testing.T) {
	i := NewFullInterpreter(8)

	err := i.Apply(&coinbase.Full{
		Type:      coinbase.FullTypeReceived,
		ProductID: "BTC-USD",
		Sequence:  10,
		Side:      "buy",
		Received:  &coinbase.Received{OrderID: "a"},
	})
	require.NoError(t, err)

	update := popUpdate(t, i)
	assert.Equal(t, "BTC-USD", update.ProductID)
	assert.Equal(t, int64(10), update.Sequence)
	assert.Nil(t, update.Bid)
	assert.Nil(t, update.Ask)
}

func TestApplyOpenAddsEntry(t *testing.T) {
	i := NewFullInterpreter(8)

	err := i.Apply(&coinbase.Full{
		Type:      coinbase.FullTypeOpen,
		ProductID: "BTC-USD",
		Sequence:  11,
		Side:      "sell",
		Open:      &coinbase.Open{OrderID: "a", Price: dec("200.2"), RemainingSize: dec("1.0")},
	})
	require.NoError(t, err)

	update := popUpdate(t, i)
	require.NotNil(t, update.Ask)
	assert.Nil(t, update.Bid)
	assert.Equal(t, "a", update.Ask.OrderID)
	assert.True(t, update.Ask.Price.Equal(dec("200.2")))
	assert.True(t, update.Ask.Size.Equal(dec("1.0")))
}

func TestApplyDoneRemovesEntry(t *testing.T) {
	i := NewFullInterpreter(8)

	err := i.Apply(&coinbase.Full{
		Type:      coinbase.FullTypeDone,
		ProductID: "BTC-USD",
		Sequence:  12,
		Side:      "buy",
		Done:      &coinbase.Done{OrderID: "a", Price: dec("200.2")},
	})
	require.NoError(t, err)

	update := popUpdate(t, i)
	require.NotNil(t, update.Bid)
	assert.Equal(t, "a", update.Bid.OrderID)
	assert.True(t, update.Bid.Size.IsZero())
}

func TestApplyDoneZeroPriceBumpsSequenceOnly(t *testing.T) {
	i := NewFullInterpreter(8)

	err := i.Apply(&coinbase.Full{
		Type:      coinbase.FullTypeDone,
		ProductID: "BTC-USD",
		Sequence:  13,
		Side:      "buy",
		Done:      &coinbase.Done{OrderID: "a"},
	})
	require.NoError(t, err)

	update := popUpdate(t, i)
	assert.Nil(t, update.Bid)
	assert.Nil(t, update.Ask)
	assert.Equal(t, int64(13), update.Sequence)
}

func TestApplyMatchReducesMakerAndEmitsTrade(t *testing.T) {
	i := NewFullInterpreter(8)

	err := i.Apply(&coinbase.Full{
		Type:      coinbase.FullTypeMatch,
		ProductID: "BTC-USD",
		Time:      "2014-11-07T08:19:27.028459Z",
		Sequence:  50,
		Side:      "sell",
		Match: &coinbase.Match{
			MakerOrderID: "maker",
			TakerOrderID: "taker",
			Price:        dec("400.23"),
			Size:         dec("5.23512"),
		},
	})
	require.NoError(t, err)

	update := popUpdate(t, i)
	require.NotNil(t, update.Ask)
	assert.Equal(t, "maker", update.Ask.OrderID)
	assert.True(t, update.Ask.Size.Equal(dec("-5.23512")))

	trade, state := i.PopTrade(100 * time.Millisecond)
	require.Equal(t, buffer.PopValid, state)
	assert.Equal(t, "BTC-USD", trade.ProductID)
	assert.Equal(t, orderbook.SideAsk, trade.Side)
	assert.Equal(t, "maker", trade.MakerOrderID)
	assert.Equal(t, "taker", trade.TakerOrderID)
	assert.True(t, trade.Price.Equal(dec("400.23")))
	assert.True(t, trade.Size.Equal(dec("5.23512")))
	assert.Equal(t, int64(50), trade.Sequence)
}

func TestApplyChangeEmitsSizeDelta(t *testing.T) {
	i := NewFullInterpreter(8)

	err := i.Apply(&coinbase.Full{
		Type:      coinbase.FullTypeChange,
		ProductID: "BTC-USD",
		Sequence:  80,
		Side:      "sell",
		Change: &coinbase.Change{
			OrderID: "a",
			Price:   dec("400.23"),
			OldSize: dec("12.234412"),
			NewSize: dec("5.23512"),
		},
	})
	require.NoError(t, err)

	update := popUpdate(t, i)
	require.NotNil(t, update.Ask)
	// reduction delta, applied on top of the resting size
	assert.True(t, update.Ask.Size.Equal(dec("-6.999292")))
}

func TestApplyChangeZeroPriceBumpsSequenceOnly(t *testing.T) {
	i := NewFullInterpreter(8)

	err := i.Apply(&coinbase.Full{
		Type:      coinbase.FullTypeChange,
		ProductID: "BTC-USD",
		Sequence:  81,
		Side:      "buy",
		Change:    &coinbase.Change{OrderID: "a", OldSize: dec("2"), NewSize: dec("1")},
	})
	require.NoError(t, err)

	update := popUpdate(t, i)
	assert.Nil(t, update.Bid)
	assert.Nil(t, update.Ask)
}

func TestApplyRejectsInvalidSide(t *testing.T) {
	i := NewFullInterpreter(8)

	err := i.Apply(&coinbase.Full{
		Type:      coinbase.FullTypeOpen,
		ProductID: "BTC-USD",
		Sequence:  1,
		Side:      "middle",
		Open:      &coinbase.Open{OrderID: "a", Price: dec("1"), RemainingSize: dec("1")},
	})
	require.ErrorIs(t, err, ErrInvalidSide)
}

func TestApplyReportsQueueOverflow(t *testing.T) {
	i := NewFullInterpreter(1)

	full := &coinbase.Full{
		Type:      coinbase.FullTypeReceived,
		ProductID: "BTC-USD",
		Side:      "buy",
		Received:  &coinbase.Received{OrderID: "a"},
	}

	for seq := int64(1); seq <= 2; seq++ {
		full.Sequence = seq
		require.NoError(t, i.Apply(full))
	}

	// capacity 1 with two unread updates: the next push overflows
	full.Sequence = 3
	err := i.Apply(full)
	require.ErrorIs(t, err, buffer.ErrOverflow)
}
