//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for martgen.
package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/martgen/martgen/internal/config"
	"github.com/martgen/martgen/internal/datagen"
	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
	seed     uint64

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "martgen",
		Short: "Star-schema data warehouse builder for CSV transactional exports",
		Long: `martgen builds a small star-schema data warehouse from raw
transactional exports (customers, products, invoices).

It runs in two sequential phases: staging cleans and normalizes the raw
extracts, and the warehouse phase assigns surrogate keys, derives the
Customer, Product, Time, and PaymentMethod dimensions, and builds the
Invoice fact table. Each phase is a short-lived synchronous batch run
over delimited files.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./martgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"seed for synthetic fields (0 = non-deterministic)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(warehouseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(tablesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	// Reinitialize logger with config; every event of this invocation
	// carries the same run id.
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
		RunID:  uuid.NewString(),
	})

	return nil
}

// newFaker builds the synthetic value generator, seeded when the caller
// asked for reproducible output.
func newFaker() *datagen.Faker {
	if cfg.Seed != 0 {
		return datagen.NewFakerWithSeed(cfg.Seed)
	}
	return datagen.NewFaker()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables each phase produces",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Staging tables (from raw extracts):")
		cmd.Println("  customers.csv  - cleaned customers with synthetic contact fields")
		cmd.Println("  products.csv   - cleaned products")
		cmd.Println("  invoices.csv   - cleaned invoice lines")
		cmd.Println()
		cmd.Println("Warehouse tables (from staging):")
		cmd.Println("  customers_dim.csv      - customer dimension")
		cmd.Println("  products_dim.csv       - product dimension")
		cmd.Println("  time_dim.csv           - minute-grain calendar dimension")
		cmd.Println("  payment_method_dim.csv - fixed payment method catalog")
		cmd.Println("  fact_invoices.csv      - invoice fact table (built last)")
	},
}
