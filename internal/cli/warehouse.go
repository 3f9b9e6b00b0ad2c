package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/martgen/martgen/internal/etl"
	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/internal/warehouse"
)

var (
	warehouseStagingDir string
	warehouseOutputDir  string

	warehouseCustomerStartID      int
	warehouseProductStartID       int
	warehouseTimeStartID          int
	warehousePaymentMethodStartID int
	warehouseInvoiceStartID       int
)

var warehouseCmd = &cobra.Command{
	Use:   "warehouse",
	Short: "Build the dimension and fact tables from the staged tables",
	Long: `Run the warehouse phase: build the Customer, Product, Time, and
PaymentMethod dimensions from the staged tables, then build the Invoice
fact table by resolving surrogate keys against the persisted dimensions.

A dimension failure is reported and blocks only the fact build; the
other dimensions still complete. Starting-id offsets let surrogate keys
continue from ids already present downstream.

Example:
  martgen warehouse --staging-dir data/staging --output-dir data/warehouse`,
	RunE: runWarehouse,
}

func init() {
	warehouseCmd.Flags().StringVar(&warehouseStagingDir, "staging-dir", "",
		"directory holding the staged tables")
	warehouseCmd.Flags().StringVar(&warehouseOutputDir, "output-dir", "",
		"directory receiving the warehouse tables")
	warehouseCmd.Flags().IntVar(&warehouseCustomerStartID, "customer-start-id", 0,
		"first surrogate id for the customer dimension")
	warehouseCmd.Flags().IntVar(&warehouseProductStartID, "product-start-id", 0,
		"first surrogate id for the product dimension")
	warehouseCmd.Flags().IntVar(&warehouseTimeStartID, "time-start-id", 0,
		"first surrogate id for the time dimension")
	warehouseCmd.Flags().IntVar(&warehousePaymentMethodStartID, "payment-method-start-id", 0,
		"first surrogate id for the payment method dimension")
	warehouseCmd.Flags().IntVar(&warehouseInvoiceStartID, "invoice-start-id", 0,
		"first surrogate id for the invoice fact table")
}

func runWarehouse(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if warehouseStagingDir != "" {
		cfg.Warehouse.StagingDir = warehouseStagingDir
	}
	if warehouseOutputDir != "" {
		cfg.Warehouse.OutputDir = warehouseOutputDir
	}
	if warehouseCustomerStartID > 0 {
		cfg.Warehouse.StartIDs.Customer = warehouseCustomerStartID
	}
	if warehouseProductStartID > 0 {
		cfg.Warehouse.StartIDs.Product = warehouseProductStartID
	}
	if warehouseTimeStartID > 0 {
		cfg.Warehouse.StartIDs.Time = warehouseTimeStartID
	}
	if warehousePaymentMethodStartID > 0 {
		cfg.Warehouse.StartIDs.PaymentMethod = warehousePaymentMethodStartID
	}
	if warehouseInvoiceStartID > 0 {
		cfg.Warehouse.StartIDs.Invoice = warehouseInvoiceStartID
	}

	if err := cfg.ValidateWarehouse(); err != nil {
		return err
	}
	return warehousePhase()
}

// warehousePhase builds the four dimensions, then the fact table. The
// fact build reads the dimensions back from disk, so it only runs once
// all four dimension builds have succeeded.
func warehousePhase() error {
	in := cfg.Warehouse.StagingDir
	out := cfg.Warehouse.OutputDir
	ids := cfg.Warehouse.StartIDs
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating warehouse output directory: %w", err)
	}

	logging.Info().
		Str("staging_dir", in).
		Str("output_dir", out).
		Msg("Warehouse phase starting")

	dims := warehouse.DimPaths{
		Time:          filepath.Join(out, "time_dim.csv"),
		Customer:      filepath.Join(out, "customers_dim.csv"),
		Product:       filepath.Join(out, "products_dim.csv"),
		PaymentMethod: filepath.Join(out, "payment_method_dim.csv"),
	}

	statuses := etl.Run(
		warehouse.NewCustomerDimBuilder(
			filepath.Join(in, "customers.csv"), dims.Customer, ids.Customer),
		warehouse.NewProductDimBuilder(
			filepath.Join(in, "products.csv"), dims.Product, ids.Product),
		warehouse.NewTimeDimBuilder(
			filepath.Join(in, "invoices.csv"), dims.Time, ids.Time),
		warehouse.NewPaymentMethodDimBuilder(dims.PaymentMethod, ids.PaymentMethod),
	)

	if !etl.AllOK(statuses) {
		// The fact build has a hard dependency on every dimension.
		logging.Error().
			Str("failed", failedNames(statuses)).
			Msg("Skipping fact build, dimension builds failed")
		return fmt.Errorf("warehouse phase: %s failed", failedNames(statuses))
	}

	factStatuses := etl.Run(
		warehouse.NewInvoiceFactBuilder(
			filepath.Join(in, "invoices.csv"),
			filepath.Join(out, "fact_invoices.csv"),
			dims, ids.Invoice, newFaker()),
	)
	if !etl.AllOK(factStatuses) {
		return fmt.Errorf("warehouse phase: %s failed", failedNames(factStatuses))
	}

	logging.Info().Msg("Warehouse phase complete")
	return nil
}
