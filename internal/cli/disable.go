package cli

import (
	"fmt"

	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:   "disable <site>",
	Short: "Disable a virtual-host site",
	Long: `Disable a virtual-host site.

On Ubuntu this delegates to a2dissite. On Fedora and SUSE the
{site}.conf file is renamed to {site}.conf.disabled; disabling a site
that is already disabled, or has no config at all, does nothing.

Examples:
  apachemgr disable horizon`,
	Args: cobra.ExactArgs(1),
	RunE: runDisableSite,
}

func init() {
	disableCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload the service afterwards")

	rootCmd.AddCommand(disableCmd)
}

func runDisableSite(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSite(site); err != nil {
		return err
	}

	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	if dryRun {
		output.Info("Would disable site %s (config: %s)", site, r.SiteConfigPath(site))
		return nil
	}

	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Disabling site...")
	if err := r.DisableSite(site); err != nil {
		return fmt.Errorf("failed to disable site: %w", err)
	}

	if err := reloadAfterChange(r, !noReload); err != nil {
		return err
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    site,
			"enabled": false,
			"path":    r.SiteConfigPath(site),
		},
		"Site %s disabled", site,
	)
}
