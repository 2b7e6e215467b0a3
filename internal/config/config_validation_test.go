// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTeamConfig() TeamConfig {
	return TeamConfig{
		App:     App{TokenSignKey: "secret", TokenIssuer: "go-scrims"},
		Storage: Storage{DB: DB{Driver: DriverPostgres, DSN: "postgres://localhost/teams"}},
		Server:  Server{HTTPAddress: ":8081", RequestTimeout: time.Second},
		Adapter: Adapter{IdentityServiceURL: "http://identity:8080", RequestTimeout: time.Second, RetryCount: 2},
	}
}

func TestTeamConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *TeamConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *TeamConfig) {}},
		{name: "sqlite driver", mutate: func(cfg *TeamConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "missing sign key", mutate: func(cfg *TeamConfig) { cfg.App.TokenSignKey = " " }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(cfg *TeamConfig) { cfg.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown driver", mutate: func(cfg *TeamConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(cfg *TeamConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty http address", mutate: func(cfg *TeamConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative request timeout", mutate: func(cfg *TeamConfig) { cfg.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
		{name: "empty identity url", mutate: func(cfg *TeamConfig) { cfg.Adapter.IdentityServiceURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "identity url without host", mutate: func(cfg *TeamConfig) { cfg.Adapter.IdentityServiceURL = "identity" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero adapter timeout", mutate: func(cfg *TeamConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative retry wait", mutate: func(cfg *TeamConfig) { cfg.Adapter.RetryWait = -time.Millisecond }, wantErr: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTeamConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIdentityConfig_Validate_IgnoresAdapter(t *testing.T) {
	cfg := IdentityConfig{
		App:     App{TokenSignKey: "secret", TokenIssuer: "go-scrims"},
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: "file::memory:"}},
		Server:  Server{HTTPAddress: ":8080"},
	}

	assert.NoError(t, cfg.validate())
}
