// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a joined error naming every
// broken group otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost != 0 &&
		(cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost) {
		errs = append(errs, ErrInvalidBcryptCost)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
