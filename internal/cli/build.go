package cli

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run both phases: staging, then warehouse",
	Long: `Run the full pipeline in dependency order: the staging phase over the
raw extracts, then the warehouse phase over the staged tables. The
warehouse phase is skipped if staging failed.

Example:
  martgen build --config martgen.yaml`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateStage(); err != nil {
		return err
	}
	if err := cfg.ValidateWarehouse(); err != nil {
		return err
	}

	if err := stagePhase(); err != nil {
		return err
	}
	return warehousePhase()
}
