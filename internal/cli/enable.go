package cli

import (
	"fmt"

	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var noReload bool

var enableCmd = &cobra.Command{
	Use:   "enable <site>",
	Short: "Enable a virtual-host site",
	Long: `Enable a virtual-host site.

On Ubuntu this delegates to a2ensite. On Fedora and SUSE the parked
{site}.conf.disabled file is renamed back to {site}.conf; enabling a
site that is already enabled, or has no config at all, does nothing.

Examples:
  apachemgr enable horizon`,
	Args: cobra.ExactArgs(1),
	RunE: runEnableSite,
}

func init() {
	enableCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload the service afterwards")

	rootCmd.AddCommand(enableCmd)
}

func runEnableSite(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSite(site); err != nil {
		return err
	}

	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	if dryRun {
		output.Info("Would enable site %s (config: %s)", site, r.SiteConfigPath(site))
		return nil
	}

	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Enabling site...")
	if err := r.EnableSite(site); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}

	if err := reloadAfterChange(r, !noReload); err != nil {
		return err
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    site,
			"enabled": true,
			"path":    r.SiteConfigPath(site),
		},
		"Site %s enabled", site,
	)
}
