package coinbase

import (
	"encoding/json"
	"fmt"
)

// -----------------------------------------------------------------------------

// Channel names one feed channel and the products subscribed on it.
type Channel struct {
	Name       string   `json:"name"`
	ProductIDs []string `json:"product_ids"`
}

// Subscriptions is the acknowledgement the feed sends after a subscribe
// request, listing the active channels.
type Subscriptions struct {
	Channels []Channel `json:"channels"`
}

// subscribeMessage is the request that opens feed channels.
type subscribeMessage struct {
	Type     string    `json:"type"`
	Channels []Channel `json:"channels"`
}

// -----------------------------------------------------------------------------

// ParseSubscriptions decodes a subscriptions acknowledgement, rejecting any
// other message type.
func ParseSubscriptions(data []byte) (Subscriptions, error) {
	var msg struct {
		Type     string    `json:"type"`
		Channels []Channel `json:"channels"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return Subscriptions{}, fmt.Errorf("unmarshal subscriptions message: %w", err)
	}

	if msg.Type != "subscriptions" {
		return Subscriptions{}, fmt.Errorf("expected subscriptions message, got %q", msg.Type)
	}

	return Subscriptions{Channels: msg.Channels}, nil
}

// -----------------------------------------------------------------------------

// subscribed reports whether the acknowledgement covers the channel for
// every requested product.
func (s Subscriptions) subscribed(channel string, products []string) bool {
	for _, ch := range s.Channels {
		if ch.Name != channel {
			continue
		}

		covered := make(map[string]bool, len(ch.ProductIDs))
		for _, productID := range ch.ProductIDs {
			covered[productID] = true
		}

		for _, productID := range products {
			if !covered[productID] {
				return false
			}
		}
		return true
	}
	return false
}
