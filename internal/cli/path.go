package cli

import (
	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <site>",
	Short: "Print the config file path for a site",
	Long: `Print the resolved configuration file path for a site.

On Ubuntu the sites-available path is printed whether or not the file
exists. On Fedora and SUSE the path reflects the current enablement
state: the enabled {site}.conf if it exists on disk, otherwise the
{site}.conf.disabled variant.

Examples:
  apachemgr path horizon`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSite(site); err != nil {
		return err
	}

	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	path := r.SiteConfigPath(site)

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"site": site,
			"path": path,
		})
	}
	output.Print("%s", path)
	return nil
}
