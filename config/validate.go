// Copyright (c) 2026 The FracNFT developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"net"
	"strings"
)

// Accepted values for the enumerated fields. Network names are matched
// exactly; log levels are matched case-insensitively.
var (
	validNetworks = map[string]bool{
		"mainnet": true,
		"testnet": true,
		"regtest": true,
	}
	validLogLevels = map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
)

// ValidateConfig checks every field of cfg and returns the first problem
// found, or nil if the configuration is usable.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}
	if !validNetworks[cfg.Network] {
		return ErrInvalidNetwork
	}
	if _, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidListenAddr, err)
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}
	return nil
}
