package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// Default values applied before any other source.
const (
	DefaultHTTPAddress        = ":8000"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultTokenIssuer        = "circuit-records"
	DefaultAdminPassword      = "admin123"
	DefaultFilesDir           = "uploads"
	DefaultDotEnvFile         = ".env"
	DefaultApplicationVersion = "dev"
	DefaultMaxUploadSize      = 32 << 20
)

type configBuilder struct {
	configs    []*StructuredConfig
	dotEnvPath string
	err        error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:    make([]*StructuredConfig, 0, 4),
		dotEnvPath: DefaultDotEnvFile,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads variables from a .env file into the process environment.
// Variables that are already set are not overwritten. A missing file is not
// an error.
func (b *configBuilder) withDotEnv() *configBuilder {
	if _, err := os.Stat(b.dotEnvPath); err != nil {
		return b
	}

	if err := godotenv.Load(b.dotEnvPath); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", b.dotEnvPath, err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          DefaultTokenIssuer,
			DefaultAdminPassword: DefaultAdminPassword,
			Version:              DefaultApplicationVersion,
		},
		Storage: Storage{
			Files: Files{
				Backend: FilesBackendLocal,
				Dir:     DefaultFilesDir,
			},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
			MaxUploadSize:      DefaultMaxUploadSize,
		},
		Workers: Workers{
			HashingConcurrency: runtime.NumCPU(),
		},
	}
}
