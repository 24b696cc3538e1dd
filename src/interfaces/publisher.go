package interfaces

import "context"

// -----------------------------------------------------------------------------

// IPublisher defines the interface for pushing market data to an external
// message broker.
type IPublisher interface {
	// Connect establishes the broker connection
	Connect() error

	// Disconnect closes the broker connection
	Disconnect() error

	// IsConnected returns the connection status
	IsConnected() bool

	// Run bridges the source's streams for the given products onto the
	// broker until the context is cancelled
	Run(ctx context.Context, source ISource, products []string) error
}
