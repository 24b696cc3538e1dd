package coinbase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestParseOrderBookSnapshot(t *testing.T) {
	raw := `{
		"sequence": 3,
		"bids": [
			["295.96", "4.39088265", "da863862-25f4-4868-ac41-005d11ab0a5f"],
			["295.95", "2.00000000", "0b303611-35ba-4c34-a0a6-4bf447250725"]
		],
		"asks": [
			["295.97", "25.23542881", "da863862-25f4-4868-ac41-005d11ab0a5f"]
		]
	}`

	book, err := ParseOrderBook([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, int64(3), book.Sequence)
	require.Len(t, book.Bids, 2)
	require.Len(t, book.Asks, 1)

	assert.True(t, book.Bids[0].Price.Equal(decimal.RequireFromString("295.96")))
	assert.True(t, book.Bids[0].Size.Equal(decimal.RequireFromString("4.39088265")))
	assert.Equal(t, "da863862-25f4-4868-ac41-005d11ab0a5f", book.Bids[0].OrderID)

	assert.True(t, book.Asks[0].Price.Equal(decimal.RequireFromString("295.97")))
}

func TestParseOrderBookRejectsShortEntry(t *testing.T) {
	raw := `{"sequence": 3, "bids": [["295.96", "4.39088265"]], "asks": []}`

	_, err := ParseOrderBook([]byte(raw))
	require.Error(t, err)
}

func TestParseOrderBookRejectsInvalidJSON(t *testing.T) {
	_, err := ParseOrderBook([]byte(`{`))
	require.Error(t, err)
}
