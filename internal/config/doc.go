// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the identity and team services.
//
// Configuration is assembled from multiple sources in the following priority
// order (a source only fills fields that higher-priority sources left empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetIdentityConfig] and [GetTeamConfig], which
// return the validated view each binary needs.
package config
