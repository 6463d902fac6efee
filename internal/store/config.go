package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Stream struct {
		// PollMillis is the fixed tick cadence for every stream. It is a
		// process-wide setting, never configurable per request.
		PollMillis int `yaml:"poll_millis"`
	} `yaml:"stream"`
	Broker struct {
		// TimeoutSeconds bounds every outbound quote request so a stalled
		// upstream cannot block stream shutdown.
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"broker"`
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr cannot be empty")
	}
	if c.Stream.PollMillis <= 0 {
		return fmt.Errorf("stream.poll_millis must be positive, got %d", c.Stream.PollMillis)
	}
	if c.Broker.TimeoutSeconds <= 0 {
		return fmt.Errorf("broker.timeout_seconds must be positive, got %d", c.Broker.TimeoutSeconds)
	}
	return nil
}

// LoadConfig reads YAML config from path. A missing file is not an error;
// defaults are used so the server runs out of the box in mock mode.
func LoadConfig(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Stream.PollMillis == 0 {
		c.Stream.PollMillis = 2000
	}
	if c.Broker.TimeoutSeconds == 0 {
		c.Broker.TimeoutSeconds = 5
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
