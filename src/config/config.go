package config

import (
	"fmt"
	"os"

	"quote-server/src/models"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Defaults applied by Validate when the corresponding field is unset.
const (
	DefaultSubscriberBufferSize = 32
	DefaultChannelBufferSize    = 1024
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides validation and defaulting.
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new Config instance from a YAML file.
func NewConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation and fills in buffer defaults.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config name cannot be empty")
	}

	if c.Listen == "" {
		return fmt.Errorf("listen address cannot be empty")
	}

	if c.Coinbase.RESTEndpoint == "" {
		return fmt.Errorf("coinbase rest_endpoint cannot be empty")
	}
	if c.Coinbase.WebsocketEndpoint == "" {
		return fmt.Errorf("coinbase websocket_endpoint cannot be empty")
	}
	if len(c.Coinbase.Products) == 0 {
		return fmt.Errorf("at least one product must be configured")
	}
	for i, product := range c.Coinbase.Products {
		if product == "" {
			return fmt.Errorf("product %d: id cannot be empty", i)
		}
	}

	if c.Buffers.Subscriber < 0 || c.Buffers.Channel < 0 {
		return fmt.Errorf("buffer sizes cannot be negative")
	}
	if c.Buffers.Subscriber == 0 {
		c.Buffers.Subscriber = DefaultSubscriberBufferSize
	}
	if c.Buffers.Channel == 0 {
		c.Buffers.Channel = DefaultChannelBufferSize
	}

	if c.NATS.Enabled {
		if len(c.NATS.Servers) == 0 {
			return fmt.Errorf("NATS servers list cannot be empty when the bridge is enabled")
		}
		switch c.NATS.Format {
		case "", "json", "gob":
		default:
			return fmt.Errorf("unknown NATS payload format: %q", c.NATS.Format)
		}
	}

	return nil
}
