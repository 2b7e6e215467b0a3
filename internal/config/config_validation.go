// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the identity service can start with cfg.
func (cfg *IdentityConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}

	return validateServer(cfg.Server)
}

// validate checks that the team service can start with cfg. On top of the
// identity service rules it requires a usable identity service URL.
func (cfg *TeamConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}
	if err := validateServer(cfg.Server); err != nil {
		return err
	}

	return validateAdapter(cfg.Adapter)
}

func validateApp(app App) error {
	if strings.TrimSpace(app.TokenSignKey) == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if strings.TrimSpace(app.TokenIssuer) == "" {
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	}

	return nil
}

func validateStorage(storage Storage) error {
	switch storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, storage.DB.Driver)
	}

	if strings.TrimSpace(storage.DB.DSN) == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	return nil
}

func validateServer(server Server) error {
	if strings.TrimSpace(server.HTTPAddress) == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func validateAdapter(adapter Adapter) error {
	raw := strings.TrimSpace(adapter.IdentityServiceURL)
	if raw == "" {
		return fmt.Errorf("%w: identity service url is required", ErrInvalidAdapterConfigs)
	}
	if u, err := url.Parse(raw); err != nil || u.Host == "" {
		return fmt.Errorf("%w: malformed identity service url %q", ErrInvalidAdapterConfigs, raw)
	}
	if adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if adapter.RetryWait < 0 {
		return fmt.Errorf("%w: negative retry wait", ErrInvalidAdapterConfigs)
	}

	return nil
}
