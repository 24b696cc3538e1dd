package coinbase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"quote-server/src/logger"
	"quote-server/src/models"

	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------

const (
	handshakeTimeout = 10 * time.Second
	requestTimeout   = 30 * time.Second

	fullChannel = "full"
)

// -----------------------------------------------------------------------------

// ClientImpl talks to the exchange: level-3 snapshots over REST and the full
// channel over websocket. There is no retry or reconnect here; a transport
// failure ends the stream and the supervisor owns recovery.
type ClientImpl struct {
	name   string
	config *models.MCoinbaseConfig
	logger *logger.Logger
	http   *http.Client
}

// -----------------------------------------------------------------------------

// NewClient creates a feed client for the configured endpoints.
func NewClient(config *models.MCoinbaseConfig, logger *logger.Logger) *ClientImpl {
	return &ClientImpl{
		name:   "CoinbaseClient",
		config: config,
		logger: logger,
		http:   &http.Client{Timeout: requestTimeout},
	}
}

// -----------------------------------------------------------------------------

// GetOrderBook fetches the full level-3 book snapshot for one product.
func (c *ClientImpl) GetOrderBook(ctx context.Context, productID string) (*OrderBook, error) {
	url := fmt.Sprintf("https://%s/products/%s/book?level=3", c.config.RESTEndpoint, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build snapshot request for %s: %w", productID, err)
	}
	req.Header.Set("User-Agent", "quote-server")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot for %s: %w", productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch snapshot for %s: unexpected status %s", productID, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read snapshot for %s: %w", productID, err)
	}

	book, err := ParseOrderBook(body)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot for %s: %w", productID, err)
	}

	return &book, nil
}

// -----------------------------------------------------------------------------

// SubscribeFull opens the full channel for the given products and invokes
// onEvent once per decoded event, in arrival order. It blocks until the
// context is cancelled, the transport fails, a message fails to decode, or
// onEvent returns an error.
func (c *ClientImpl) SubscribeFull(ctx context.Context, products []string, onEvent func(*Full) error) error {
	endpoint := fmt.Sprintf("wss://%s", c.config.WebsocketEndpoint)

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", endpoint, err)
	}
	defer conn.Close()

	// unblock the read loop when the context goes away
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	subscribe := subscribeMessage{
		Type:     "subscribe",
		Channels: []Channel{{Name: fullChannel, ProductIDs: products}},
	}
	if err := conn.WriteJSON(subscribe); err != nil {
		return fmt.Errorf("send subscribe message: %w", err)
	}

	// the feed confirms with a subscriptions message before any event
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("read subscriptions acknowledgement: %w", err)
	}
	subscriptions, err := ParseSubscriptions(raw)
	if err != nil {
		return err
	}
	if !subscriptions.subscribed(fullChannel, products) {
		return fmt.Errorf("full channel subscription not acknowledged for all products")
	}

	c.logger.Info("%s : subscribed to full channel for %d products", c.name, len(products))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read full channel: %w", err)
		}

		full, err := ParseFull(raw)
		if err != nil {
			return fmt.Errorf("decode full channel event: %w", err)
		}

		if err := onEvent(&full); err != nil {
			return fmt.Errorf("handle full channel event: %w", err)
		}
	}
}
