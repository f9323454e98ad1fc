// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	// envCORSOrigins holds a comma separated list of allowed browser origins.
	envCORSOrigins = "SERVER_CORS_ORIGINS"
	// envSeedAccount is a "username:password" shorthand for the seed account.
	// APP_SEED_USERNAME and APP_SEED_PASSWORD take precedence over it.
	envSeedAccount = "APP_SEED_ACCOUNT"
)

// parseEnv populates cfg from environment variables. Scalar fields are mapped
// by caarlos0/env through their `env` and `envPrefix` tags; the CORS origin
// list and the seed account shorthand are parsed here.
//
// Returns a wrapped error if a value cannot be converted to its target type
// or the seed account shorthand is malformed.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if raw, ok := os.LookupEnv(envCORSOrigins); ok {
		cfg.Server.CORSOrigins = splitList(raw)
	}

	cfg.App.SeedUsername = strings.TrimSpace(cfg.App.SeedUsername)
	if raw, ok := os.LookupEnv(envSeedAccount); ok {
		username, password, err := parseSeedAccount(raw)
		if err != nil {
			return fmt.Errorf("error getting env configs: %s: %w", envSeedAccount, err)
		}
		if cfg.App.SeedUsername == "" {
			cfg.App.SeedUsername = username
		}
		if cfg.App.SeedPassword == "" {
			cfg.App.SeedPassword = password
		}
	}

	return nil
}

// parseSeedAccount splits "username:password" on the first colon, so the
// password itself may contain colons.
func parseSeedAccount(raw string) (username, password string, err error) {
	username, password, found := strings.Cut(raw, ":")
	username = strings.TrimSpace(username)
	if !found || username == "" || password == "" {
		return "", "", ErrInvalidSeedAccount
	}

	return username, password, nil
}
