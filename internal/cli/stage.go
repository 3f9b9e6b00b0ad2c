package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/martgen/martgen/internal/etl"
	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/internal/staging"
)

var (
	stageInputDir  string
	stageOutputDir string
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Clean and normalize the raw extracts into staged tables",
	Long: `Run the staging phase: read the raw customer, product, and invoice
extracts, rename their columns to English, strip diacritics from display
fields, synthesize the missing contact fields, and write the staged
tables.

Example:
  martgen stage --input-dir data/input --output-dir data/staging`,
	RunE: runStage,
}

func init() {
	stageCmd.Flags().StringVar(&stageInputDir, "input-dir", "",
		"directory holding the raw extracts")
	stageCmd.Flags().StringVar(&stageOutputDir, "output-dir", "",
		"directory receiving the staged tables")
}

func runStage(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if stageInputDir != "" {
		cfg.Stage.InputDir = stageInputDir
	}
	if stageOutputDir != "" {
		cfg.Stage.OutputDir = stageOutputDir
	}

	if err := cfg.ValidateStage(); err != nil {
		return err
	}
	return stagePhase()
}

// stagePhase runs the staging builders. Failures are contained per
// builder; the phase fails if any builder failed.
func stagePhase() error {
	in := cfg.Stage.InputDir
	out := cfg.Stage.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating staging output directory: %w", err)
	}

	logging.Info().
		Str("input_dir", in).
		Str("output_dir", out).
		Msg("Staging phase starting")

	faker := newFaker()
	statuses := etl.Run(
		staging.NewCustomerBuilder(
			filepath.Join(in, "customers.csv"),
			filepath.Join(out, "customers.csv"),
			faker,
		),
		staging.NewProductBuilder(
			filepath.Join(in, "products.csv"),
			filepath.Join(out, "products.csv"),
		),
		staging.NewInvoiceBuilder(
			filepath.Join(in, "invoices.csv"),
			filepath.Join(out, "invoices.csv"),
		),
	)

	if !etl.AllOK(statuses) {
		return fmt.Errorf("staging phase: %s failed", failedNames(statuses))
	}
	logging.Info().Msg("Staging phase complete")
	return nil
}

// failedNames lists the names of failed builds for operator diagnosis.
func failedNames(statuses []etl.Status) string {
	var names []string
	for _, s := range statuses {
		if s.Failed() {
			names = append(names, s.Name)
		}
	}
	return strings.Join(names, ", ")
}
