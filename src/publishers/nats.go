package publishers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"golang.org/x/sync/errgroup"

	"quote-server/src/buffer"
	"quote-server/src/dispatcher"
	"quote-server/src/interfaces"
	"quote-server/src/logger"
	"quote-server/src/models"
)

// -----------------------------------------------------------------------------

const pumpPopInterval = time.Second

// -----------------------------------------------------------------------------
// NATSPublisher bridges the source's streams onto NATS core subjects
// -----------------------------------------------------------------------------

type NATSPublisher struct {
	name   string
	config *models.MNATSConfig
	logger *logger.Logger

	mu sync.RWMutex

	nc         *nats.Conn
	serializer interfaces.ISerializer // serialize message before sending

	connected bool
}

// -----------------------------------------------------------------------------

// NewNATSPublisher creates a new NATS publisher instance.
func NewNATSPublisher(config *models.MNATSConfig, logger *logger.Logger, serializer interfaces.ISerializer) interfaces.IPublisher {
	return &NATSPublisher{
		name:       config.ClientID,
		config:     config,
		logger:     logger,
		serializer: serializer,
	}
}

// -----------------------------------------------------------------------------

// Connect establishes the connection to the NATS servers.
func (np *NATSPublisher) Connect() error {
	np.mu.Lock()
	defer np.mu.Unlock()

	if np.nc != nil && np.nc.IsConnected() {
		return nil
	}

	opts := []nats.Option{
		nats.Name(np.config.ClientID),

		// Connection Event Handlers
		nats.RetryOnFailedConnect(true),
		nats.ClosedHandler(func(nc *nats.Conn) {
			np.logger.Error("%s : NATS connection closed unexpectedly", np.name)
			np.setConnected(false)
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			np.logger.Warning("%s : NATS disconnected, attempting reconnect: %v", np.name, err)
			np.setConnected(false)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			np.logger.Info("%s : NATS successfully reconnected to %s", np.name, nc.ConnectedUrl())
			np.setConnected(true)
		}),
	}

	var err error
	np.nc, err = nats.Connect(strings.Join(np.config.Servers, ","), opts...)
	if err != nil {
		return fmt.Errorf("nats connection failed: %w", err)
	}

	np.setConnected(true)
	np.logger.Info("%s : successfully connected to NATS at %s", np.name, np.nc.ConnectedUrl())
	return nil
}

// -----------------------------------------------------------------------------

// Disconnect drains and closes the NATS connection.
func (np *NATSPublisher) Disconnect() error {
	np.mu.Lock()
	defer np.mu.Unlock()

	if np.nc == nil {
		return nil
	}

	if err := np.nc.Drain(); err != nil {
		np.logger.Warning("%s : NATS drain failed, closing hard: %v", np.name, err)
		np.nc.Close()
	}
	np.nc = nil
	np.connected = false
	np.logger.Info("%s : NATS connection closed", np.name)
	return nil
}

// -----------------------------------------------------------------------------

// IsConnected returns the connection status.
func (np *NATSPublisher) IsConnected() bool {
	np.mu.RLock()
	defer np.mu.RUnlock()
	return np.connected
}

func (np *NATSPublisher) setConnected(connected bool) {
	np.mu.Lock()
	np.connected = connected
	np.mu.Unlock()
}

// -----------------------------------------------------------------------------

// Publish sends raw data to a NATS core subject, fire-and-forget.
func (np *NATSPublisher) Publish(subject string, data []byte) error {
	if !np.IsConnected() {
		return fmt.Errorf("nats client not connected")
	}
	return np.nc.Publish(subject, data)
}

// -----------------------------------------------------------------------------

// Run subscribes to the source's book update and trade streams for every
// product and pumps them onto quote.orderbook.<product> and
// quote.trade.<product> until the context is cancelled. A pump that falls
// behind its stream logs a warning and stops; the bridge is best-effort and
// never takes the feed down.
func (np *NATSPublisher) Run(ctx context.Context, source interfaces.ISource, products []string) error {
	if err := np.Connect(); err != nil {
		return err
	}
	defer np.Disconnect()

	group, ctx := errgroup.WithContext(ctx)
	for _, productID := range products {
		books := source.SubscribeOrderBook(productID)
		trades := source.SubscribeTrade(productID)

		subject := fmt.Sprintf("quote.orderbook.%s", productID)
		group.Go(func() error {
			return pump(ctx, np, books, subject)
		})

		subject = fmt.Sprintf("quote.trade.%s", productID)
		group.Go(func() error {
			return pump(ctx, np, trades, subject)
		})
	}

	err := group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// -----------------------------------------------------------------------------

// pump forwards one subscription onto one subject. Serialization or publish
// failures are logged and skipped; only overflow ends the pump.
func pump[T any](ctx context.Context, np *NATSPublisher, sub *dispatcher.Subscriber[T], subject string) error {
	defer sub.Close()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		value, state := sub.Pop(pumpPopInterval)
		switch state {
		case buffer.PopTimeout:
			continue
		case buffer.PopOverflow:
			np.logger.Warning("%s : bridge for %s fell behind, stopping pump", np.name, subject)
			return nil
		}

		data, err := np.serializer.Marshal(value)
		if err != nil {
			np.logger.Error("%s : failed to serialize data for %s: %v", np.name, subject, err)
			continue
		}

		if err := np.Publish(subject, data); err != nil {
			np.logger.Error("%s : failed to publish to %s: %v", np.name, subject, err)
		}
	}
}
