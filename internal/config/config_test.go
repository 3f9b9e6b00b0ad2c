//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Stage.InputDir == "" || cfg.Stage.OutputDir == "" {
		t.Error("stage directories not defaulted")
	}
	if cfg.Warehouse.StagingDir != cfg.Stage.OutputDir {
		t.Errorf("warehouse staging dir %q should default to stage output dir %q",
			cfg.Warehouse.StagingDir, cfg.Stage.OutputDir)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	// Point the loader at an empty directory so no config file is found.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "martgen.yaml")
	content := `
log_level: debug
seed: 99
stage:
  input_dir: /tmp/raw
  output_dir: /tmp/staged
warehouse:
  staging_dir: /tmp/staged
  output_dir: /tmp/dw
  start_ids:
    customer: 100
    invoice: 5000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.Stage.InputDir != "/tmp/raw" {
		t.Errorf("Stage.InputDir = %q", cfg.Stage.InputDir)
	}
	if cfg.Warehouse.StartIDs.Customer != 100 {
		t.Errorf("StartIDs.Customer = %d", cfg.Warehouse.StartIDs.Customer)
	}
	if cfg.Warehouse.StartIDs.Invoice != 5000 {
		t.Errorf("StartIDs.Invoice = %d", cfg.Warehouse.StartIDs.Invoice)
	}
	// Unset offsets stay at zero.
	if cfg.Warehouse.StartIDs.Time != 0 {
		t.Errorf("StartIDs.Time = %d, want 0", cfg.Warehouse.StartIDs.Time)
	}
}

func TestLoadBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "martgen.yaml")
	if err := os.WriteFile(path, []byte("log_level: [not, a, string"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestValidateStage(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateStage(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cfg.Stage.InputDir = ""
	if err := cfg.ValidateStage(); err == nil {
		t.Error("expected error for empty input dir")
	}
}

func TestValidateWarehouse(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateWarehouse(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cfg.Warehouse.StartIDs.Product = -5
	if err := cfg.ValidateWarehouse(); err == nil {
		t.Error("expected error for negative start id")
	}

	cfg = DefaultConfig()
	cfg.Warehouse.OutputDir = ""
	if err := cfg.ValidateWarehouse(); err == nil {
		t.Error("expected error for empty output dir")
	}
}
