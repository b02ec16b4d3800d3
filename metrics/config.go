package metrics

import (
	"fmt"
	"net"
	"time"
)

const (
	defaultMetricsPort           = 2114
	defaultMetricsHost           = "127.0.0.1"
	defaultMetricsUpdateInterval = 100 * time.Millisecond
)

// Config defines the server's basic configuration
type Config struct {
	// Enabled defines if the metrics server should be enabled
	Enabled bool `long:"enabled" description:"Enable reporting metrics"`

	// Host defines the metrics server host
	Host string `long:"host" description:"IP of the Prometheus server"`

	// Port defines the metrics server port
	Port int `long:"port" description:"Port of the Prometheus server"`

	// UpdateInterval defines the metrics update interval
	UpdateInterval time.Duration `long:"updateinterval" description:"The interval of Prometheus metrics updated"`
}

func (cfg *Config) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}

	ip := net.ParseIP(cfg.Host)
	if ip == nil {
		return fmt.Errorf("invalid host: %v", cfg.Host)
	}

	return nil
}

func (cfg *Config) Address() (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), nil
}

func DefaultBenchmarkerConfig() *Config {
	return &Config{
		Enabled:        false,
		Port:           defaultMetricsPort,
		Host:           defaultMetricsHost,
		UpdateInterval: defaultMetricsUpdateInterval,
	}
}
