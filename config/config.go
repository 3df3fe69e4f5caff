// Copyright (c) 2026 The FracNFT developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config handles configuration for deployments embedding the
// fractional-NFT distribution engine: the data directory holding the bolt
// databases, network selection, and log settings passed through to the
// embedding binary.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all engine configuration values.
type Config struct {
	DataDir    string // directory for the registry and ledger databases
	ListenAddr string // host:port for the embedding service
	Network    string // "mainnet", "testnet", or "regtest"
	LogLevel   string // "debug", "info", "warn", or "error"
	LogFile    string // empty = stderr
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		DataDir:    DefaultDataDir(),
		ListenAddr: ":8080",
		Network:    "mainnet",
		LogLevel:   "info",
		LogFile:    "",
	}
}

// DefaultDataDir returns the default data directory, {home}/.fracnft.
// Falls back to a relative .fracnft if the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fracnft"
	}
	return filepath.Join(home, ".fracnft")
}

// ConfigPath returns the path of the config file within a data directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config")
}

// RegistryDBPath returns the path of the distribution registry database
// within a data directory.
func RegistryDBPath(dataDir string) string {
	return filepath.Join(dataDir, "registry.db")
}

// LedgerDBPath returns the path of the balance ledger database within a
// data directory.
func LedgerDBPath(dataDir string) string {
	return filepath.Join(dataDir, "ledger.db")
}

// LoadConfig reads a key=value config file and returns the parsed Config.
// Keys not present in the file retain their defaults; unknown keys are
// ignored for forward compatibility.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, err := parseKeyValue(line)
		if err != nil {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, i+1, line)
		}
		switch key {
		case "datadir":
			cfg.DataDir = value
		case "listen":
			cfg.ListenAddr = value
		case "network":
			cfg.Network = value
		case "loglevel":
			cfg.LogLevel = value
		case "logfile":
			cfg.LogFile = value
		}
	}
	return cfg, nil
}

// parseKeyValue splits a config line on the first '=' and trims whitespace.
func parseKeyValue(line string) (key, value string, err error) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", ErrInvalidConfigLine
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), nil
}

// SaveConfig writes the configuration as a key=value file, creating parent
// directories as needed.
func SaveConfig(path string, cfg Config) error {
	var b strings.Builder
	b.WriteString("# FracNFT Configuration\n")
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "listen = %s\n", cfg.ListenAddr)
	fmt.Fprintf(&b, "network = %s\n", cfg.Network)
	fmt.Fprintf(&b, "loglevel = %s\n", cfg.LogLevel)
	fmt.Fprintf(&b, "logfile = %s\n", cfg.LogFile)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
