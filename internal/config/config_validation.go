// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks every configuration group and reports the first invalid
// one as its sentinel error, wrapping the validator details.
func (cfg *ClientConfig) validate() error {
	groups := []struct {
		value    any
		sentinel error
	}{
		{cfg.Storage, ErrInvalidStorageConfigs},
		{cfg.Adapter, ErrInvalidAdapterConfigs},
		{cfg.Workers, ErrInvalidWorkerConfigs},
		{cfg.App, ErrInvalidAppConfigs},
	}

	for _, g := range groups {
		if err := configValidator.Struct(g.value); err != nil {
			return fmt.Errorf("%w: %w", g.sentinel, err)
		}
	}

	return nil
}
