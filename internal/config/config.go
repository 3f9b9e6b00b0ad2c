//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for martgen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for martgen.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed seeds the synthetic value generator. Zero means a
	// time-derived seed; any other value makes mock fields reproducible.
	Seed uint64 `mapstructure:"seed"`

	// Stage holds configuration for the staging phase.
	Stage StageConfig `mapstructure:"stage"`

	// Warehouse holds configuration for the warehouse phase.
	Warehouse WarehouseConfig `mapstructure:"warehouse"`
}

// StageConfig holds configuration for the staging phase.
type StageConfig struct {
	// InputDir holds the raw extracts (customers.csv, products.csv,
	// invoices.csv).
	InputDir string `mapstructure:"input_dir"`

	// OutputDir receives the staged tables.
	OutputDir string `mapstructure:"output_dir"`
}

// WarehouseConfig holds configuration for the warehouse phase.
type WarehouseConfig struct {
	// StagingDir holds the staged tables (the staging phase's OutputDir).
	StagingDir string `mapstructure:"staging_dir"`

	// OutputDir receives the dimension and fact tables.
	OutputDir string `mapstructure:"output_dir"`

	// StartIDs are the surrogate-id offsets per warehouse table,
	// typically the last id already present in the downstream database.
	StartIDs StartIDs `mapstructure:"start_ids"`
}

// StartIDs holds the per-table surrogate-id offsets.
type StartIDs struct {
	Customer      int `mapstructure:"customer"`
	Product       int `mapstructure:"product"`
	Time          int `mapstructure:"time"`
	PaymentMethod int `mapstructure:"payment_method"`
	Invoice       int `mapstructure:"invoice"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Stage: StageConfig{
			InputDir:  "data/input",
			OutputDir: "data/staging",
		},
		Warehouse: WarehouseConfig{
			StagingDir: "data/staging",
			OutputDir:  "data/warehouse",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./martgen.yaml
// 3. ~/.config/martgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("martgen")
	v.SetConfigType("yaml")

	// Add config paths
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "martgen"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateStage checks configuration required for the staging phase.
func (c *Config) ValidateStage() error {
	if c.Stage.InputDir == "" {
		return fmt.Errorf("stage input directory is required")
	}
	if c.Stage.OutputDir == "" {
		return fmt.Errorf("stage output directory is required")
	}
	return nil
}

// ValidateWarehouse checks configuration required for the warehouse phase.
func (c *Config) ValidateWarehouse() error {
	if c.Warehouse.StagingDir == "" {
		return fmt.Errorf("warehouse staging directory is required")
	}
	if c.Warehouse.OutputDir == "" {
		return fmt.Errorf("warehouse output directory is required")
	}
	for name, id := range map[string]int{
		"customer":       c.Warehouse.StartIDs.Customer,
		"product":        c.Warehouse.StartIDs.Product,
		"time":           c.Warehouse.StartIDs.Time,
		"payment_method": c.Warehouse.StartIDs.PaymentMethod,
		"invoice":        c.Warehouse.StartIDs.Invoice,
	} {
		if id < 0 {
			return fmt.Errorf("start id for %s must be non-negative, got %d", name, id)
		}
	}
	return nil
}
