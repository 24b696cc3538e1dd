package models

// -----------------------------------------------------------------------------

// MConfig is the root configuration model loaded from the YAML config file.
type MConfig struct {
	// Name identifies this service instance in logs
	Name string `yaml:"name"`

	// Listen is the address the gRPC quote service binds to, e.g. "0.0.0.0:8080"
	Listen string `yaml:"listen"`

	Coinbase MCoinbaseConfig `yaml:"coinbase"`
	Buffers  MBuffersConfig  `yaml:"buffers"`
	NATS     MNATSConfig     `yaml:"nats"`
	Log      MLogConfig      `yaml:"log"`
}

// -----------------------------------------------------------------------------

// MCoinbaseConfig holds the upstream exchange endpoints and the product set.
// Endpoints are bare hosts; the client prefixes https:// and wss:// itself.
type MCoinbaseConfig struct {
	RESTEndpoint      string   `yaml:"rest_endpoint"`
	WebsocketEndpoint string   `yaml:"websocket_endpoint"`
	Products          []string `yaml:"products"`
}

// -----------------------------------------------------------------------------

// MBuffersConfig sizes the internal and per-subscriber bounded buffers.
// Subscriber is the capacity of each consumer-facing queue, Channel the
// capacity of the interpreter-internal queues that decouple the feed reader
// from the dispatch loops.
type MBuffersConfig struct {
	Subscriber int `yaml:"subscriber"`
	Channel    int `yaml:"channel"`
}

// -----------------------------------------------------------------------------

// MNATSConfig configures the optional NATS bridge publisher.
type MNATSConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Servers  []string `yaml:"servers"`
	ClientID string   `yaml:"client_id"`
	// Format selects the payload serializer: "json" or "gob"
	Format string `yaml:"format"`
}

// -----------------------------------------------------------------------------

// MLogConfig controls log level and output format ("text" or "json").
type MLogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
