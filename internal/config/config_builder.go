// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// Built-in defaults applied before any other source.
const (
	DefaultHTTPAddress    = "localhost:5000"
	DefaultDSN            = ":memory:"
	DefaultTokenIssuer    = "asset-tracker"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultVersion        = "1.0.0"
	DefaultLogLevel       = "info"
	DefaultSeedUsername   = "admin"
	DefaultSeedPassword   = "admin123"
	DefaultBcryptCost     = 10
	DefaultAdapterAddress = "http://localhost:5000"
	dotEnvFile            = ".env"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
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

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error; variables already set are kept.
func (b *configBuilder) withDotEnv() *configBuilder {
	if _, err := os.Stat(dotEnvFile); err != nil {
		return b
	}

	if err := godotenv.Load(dotEnvFile); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", dotEnvFile, err))
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

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
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
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			SeedUsername:  DefaultSeedUsername,
			SeedPassword:  DefaultSeedPassword,
			BcryptCost:    DefaultBcryptCost,
			LogLevel:      DefaultLogLevel,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
			Username:       DefaultSeedUsername,
			Password:       DefaultSeedPassword,
		},
	}
}
