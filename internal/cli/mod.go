package cli

import (
	"fmt"

	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var modQuery bool

var modCmd = &cobra.Command{
	Use:   "mod <name>",
	Short: "Enable an Apache module",
	Long: `Enable an Apache module, restarting the service when the module was
not already enabled.

On Fedora modules ship pre-enabled via package installation, so
enabling is a no-op there. Use --query to check without changing
anything.

Examples:
  apachemgr mod wsgi
  apachemgr mod ssl --query`,
	Args: cobra.ExactArgs(1),
	RunE: runMod,
}

func init() {
	modCmd.Flags().BoolVarP(&modQuery, "query", "q", false, "Only report whether the module is enabled")

	rootCmd.AddCommand(modCmd)
}

func runMod(cmd *cobra.Command, args []string) error {
	mod := args[0]

	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	if modQuery {
		enabled, err := r.IsModEnabled(mod)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(map[string]interface{}{
				"mod":     mod,
				"enabled": enabled,
			})
		}
		if enabled {
			output.Success("Mod %s is enabled", mod)
		} else {
			output.Warn("Mod %s is not enabled", mod)
		}
		return nil
	}

	if dryRun {
		output.Info("Would enable mod %s on %s", mod, r.Family())
		return nil
	}

	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Enabling mod %s...", mod)
	if err := r.EnableMod(mod); err != nil {
		return fmt.Errorf("failed to enable mod: %w", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"mod":     mod,
			"enabled": true,
		},
		"Mod %s enabled", mod,
	)
}
