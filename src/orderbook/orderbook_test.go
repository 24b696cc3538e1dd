package orderbook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func entry(orderID, price, size string) Entry {
	return Entry{OrderID: orderID, Price: dec(price), Size: dec(size)}
}

func testBook() *Book {
	bids := []Entry{
		entry("de43f91d", "2.0", "1.0"),
		entry("77c7c96d", "1.0", "1.0"),
		entry("dd3c42ec", "1.0", "1.0"),
	}
	asks := []Entry{
		entry("e68b5cb3", "2.1", "1.0"),
		entry("b37c144f", "2.1", "1.0"),
		entry("09d86b54", "3.0", "1.0"),
	}
	return NewBook(0, bids, asks)
}

func TestNewBookRetainsArrivalOrder(t *testing.T) {
	book := testBook()

	assert.Equal(t, []Entry{
		entry("de43f91d", "2.0", "1.0"),
		entry("77c7c96d", "1.0", "1.0"),
		entry("dd3c42ec", "1.0", "1.0"),
	}, book.Bids())

	// same-price asks keep FIFO order within the 2.1 level
	assert.Equal(t, []Entry{
		entry("e68b5cb3", "2.1", "1.0"),
		entry("b37c144f", "2.1", "1.0"),
		entry("09d86b54", "3.0", "1.0"),
	}, book.Asks())
}

func TestUpdateReplacesSizeInPlace(t *testing.T) {
	book := testBook()

	bid := entry("77c7c96d", "1.0", "0.5")
	_, err := book.Update(Update{Sequence: 1, Bid: &bid})
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		entry("de43f91d", "2.0", "1.0"),
		entry("77c7c96d", "1.0", "0.5"),
		entry("dd3c42ec", "1.0", "1.0"),
	}, book.Bids())
	assert.Equal(t, int64(1), book.Sequence())
}

func TestUpdateRemovesZeroSizeEntry(t *testing.T) {
	book := testBook()

	bid := entry("77c7c96d", "1.0", "0.0")
	_, err := book.Update(Update{Sequence: 1, Bid: &bid})
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		entry("de43f91d", "2.0", "1.0"),
		entry("dd3c42ec", "1.0", "1.0"),
	}, book.Bids())
}

func TestUpdateReducesSizeByNegativeDelta(t *testing.T) {
	book := NewBook(0, []Entry{entry("a1", "2.0", "1.0")}, nil)

	bid := Entry{OrderID: "a1", Size: dec("-0.4")}
	resolved, err := book.Update(Update{Sequence: 1, Bid: &bid})
	require.NoError(t, err)

	require.NotNil(t, resolved.Bid)
	assert.Equal(t, entry("a1", "2.0", "0.6"), *resolved.Bid)
	assert.Equal(t, []Entry{entry("a1", "2.0", "0.6")}, book.Bids())
}

func TestUpdateReducingToZeroRemovesEntry(t *testing.T) {
	book := NewBook(0, []Entry{entry("a1", "2.0", "1.0")}, nil)

	bid := Entry{OrderID: "a1", Size: dec("-1.0")}
	_, err := book.Update(Update{Sequence: 1, Bid: &bid})
	require.NoError(t, err)

	assert.Empty(t, book.Bids())
}

func TestUpdateResolvesZeroPriceFromIndex(t *testing.T) {
	book := NewBook(0, nil, []Entry{entry("a1", "3.5", "2.0")})

	// removal hint: zero price, zero size
	ask := Entry{OrderID: "a1"}
	resolved, err := book.Update(Update{Sequence: 1, Ask: &ask})
	require.NoError(t, err)

	require.NotNil(t, resolved.Ask)
	assert.Equal(t, dec("3.5"), resolved.Ask.Price)
	assert.Empty(t, book.Asks())
}

func TestUpdateRejectsReductionOfUnknownOrder(t *testing.T) {
	book := testBook()

	bid := Entry{OrderID: "missing", Price: dec("1.0"), Size: dec("-0.5")}
	_, err := book.Update(Update{Sequence: 1, Bid: &bid})
	require.ErrorIs(t, err, ErrMissingEntry)
}

func TestUpdateRejectsPriceLookupOfUnknownOrder(t *testing.T) {
	book := testBook()

	bid := Entry{OrderID: "missing", Size: dec("1.0")}
	_, err := book.Update(Update{Sequence: 1, Bid: &bid})
	require.ErrorIs(t, err, ErrMissingEntry)
}

func TestEmptyUpdateBumpsSequenceOnly(t *testing.T) {
	book := testBook()

	resolved, err := book.Update(Update{ProductID: "BTC-USD", Sequence: 5})
	require.NoError(t, err)

	assert.Nil(t, resolved.Bid)
	assert.Nil(t, resolved.Ask)
	assert.Equal(t, int64(5), book.Sequence())
	assert.Len(t, book.Bids(), 3)
	assert.Len(t, book.Asks(), 3)
}

func TestInsertAppendsToSamePriceLevel(t *testing.T) {
	book := NewBook(0, nil, []Entry{entry("x1", "2.1", "1.0")})

	ask := entry("y1", "2.1", "1.0")
	_, err := book.Update(Update{Sequence: 1, Ask: &ask})
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		entry("x1", "2.1", "1.0"),
		entry("y1", "2.1", "1.0"),
	}, book.Asks())
}

func TestInsertKeepsSideOrdering(t *testing.T) {
	book := NewBook(0,
		[]Entry{entry("b1", "2.0", "1.0")},
		[]Entry{entry("a1", "3.0", "1.0")},
	)

	bid := entry("b2", "2.5", "1.0")
	_, err := book.Update(Update{Sequence: 1, Bid: &bid})
	require.NoError(t, err)

	ask := entry("a2", "2.8", "1.0")
	_, err = book.Update(Update{Sequence: 2, Ask: &ask})
	require.NoError(t, err)

	// bids best (highest) first, asks best (lowest) first
	assert.Equal(t, []Entry{
		entry("b2", "2.5", "1.0"),
		entry("b1", "2.0", "1.0"),
	}, book.Bids())
	assert.Equal(t, []Entry{
		entry("a2", "2.8", "1.0"),
		entry("a1", "3.0", "1.0"),
	}, book.Asks())
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideAsk, SideBid.Opposite())
	assert.Equal(t, SideBid, SideAsk.Opposite())
}
