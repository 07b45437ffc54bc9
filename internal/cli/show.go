package cli

import (
	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <site>",
	Short: "Show details for a virtual-host site",
	Long: `Show the resolved config path and enablement state for a site.

Examples:
  apachemgr show horizon
  apachemgr show horizon --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSite(site); err != nil {
		return err
	}

	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	enabled, err := r.IsSiteEnabled(site)
	if err != nil {
		return err
	}
	path := r.SiteConfigPath(site)

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"site":    site,
			"family":  r.Family().String(),
			"service": r.Identity().Service,
			"path":    path,
			"enabled": enabled,
		})
	}

	output.Print("Site:    %s", site)
	output.Print("Family:  %s", r.Family())
	output.Print("Service: %s", r.Identity().Service)
	output.Print("Config:  %s", path)
	if enabled {
		output.Success("Status:  enabled")
	} else {
		output.Warn("Status:  disabled")
	}
	return nil
}
