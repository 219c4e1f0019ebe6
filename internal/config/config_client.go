package config

import (
	"errors"
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultClientServerAddress  = "http://localhost:8000"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the circuit records server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, the .env file and environment variables. Command-line flags of
// the client are applied by the caller on top of the result.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().withDotEnv()
	if b.err != nil {
		return nil, fmt.Errorf("error loading client config: %w", b.err)
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, errors.Join(ErrInvalidAdapterConfigs, err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientServerAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
	}
	if envCfg.Adapter.HTTPAddress != "" {
		clientCfg.Adapter.HTTPAddress = envCfg.Adapter.HTTPAddress
	}
	if envCfg.Adapter.RequestTimeout > 0 {
		clientCfg.Adapter.RequestTimeout = envCfg.Adapter.RequestTimeout
	}

	return clientCfg, clientCfg.validate()
}
